// Package client is the forum's gRPC client.
//
// GRPCClient keeps the token obtained by Signup or Signin and attaches it to
// every call as "authorization: Bearer <token>". Server statuses are mapped
// to the sentinel errors in errors.go, wrapped together with the server's
// message so callers can both match and display them.
package client
