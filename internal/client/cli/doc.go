// Package cli provides the interactive forum terminal client.
//
// Commands:
//
//	signup, signin, signout, me
//	list, show <id>
//	ask, edit <question-id>, delete <question-id>
//	answer <question-id>, editanswer <answer-id>, deleteanswer <answer-id>
//	help, exit | quit
//
// Permissions are enforced by the server; the client only reports what the
// server answered.
package cli
