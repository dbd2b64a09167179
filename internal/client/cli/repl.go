package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isSignedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	SignOut(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Ask(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Answer(ctx context.Context, questionID string) error
	EditAnswer(ctx context.Context, id string) error
	DeleteAnswer(ctx context.Context, id string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Handler
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		fmt.Printf("forum %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: (l)ist, show <id>, ask, answer <question-id>, edit <question-id>, " +
					"editanswer <answer-id>, delete <question-id>, deleteanswer <answer-id>, me, signout, exit")
			} else {
				printlnFn("Available commands: signup, signin, (l)ist, show <id>, exit")
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		err = dispatch(ctx, a, cmd, args)
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	withID := func(usage string, fn func(context.Context, string) error) error {
		if len(args) != 1 {
			printlnFn("Usage:", usage)
			return nil
		}
		return fn(ctx, args[0])
	}

	switch cmd {
	case "signup":
		return a.Signup(ctx)
	case "signin":
		return a.Signin(ctx)
	case "signout":
		return a.SignOut(ctx)
	case "me":
		return a.Me(ctx)
	case "l", "list":
		return a.List(ctx)
	case "show":
		return withID("show <question-id>", a.Show)
	case "ask":
		return a.Ask(ctx)
	case "edit":
		return withID("edit <question-id>", a.Edit)
	case "delete":
		return withID("delete <question-id>", a.Delete)
	case "answer":
		return withID("answer <question-id>", a.Answer)
	case "editanswer":
		return withID("editanswer <answer-id>", a.EditAnswer)
	case "deleteanswer":
		return withID("deleteanswer <answer-id>", a.DeleteAnswer)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
