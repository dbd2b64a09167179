package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	signedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.signedIn = true
	return f.record("signup")
}
func (f *fakeExec) Signin(ctx context.Context) error {
	f.signedIn = true
	return f.record("signin")
}
func (f *fakeExec) SignOut(ctx context.Context) error {
	f.signedIn = false
	return f.record("signout")
}
func (f *fakeExec) Me(ctx context.Context) error                { return f.record("me") }
func (f *fakeExec) List(ctx context.Context) error              { return f.record("list") }
func (f *fakeExec) Show(ctx context.Context, id string) error   { return f.record("show", id) }
func (f *fakeExec) Ask(ctx context.Context) error               { return f.record("ask") }
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.record("edit", id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete", id) }
func (f *fakeExec) Answer(ctx context.Context, id string) error { return f.record("answer", id) }
func (f *fakeExec) EditAnswer(ctx context.Context, id string) error {
	return f.record("editanswer", id)
}
func (f *fakeExec) DeleteAnswer(ctx context.Context, id string) error {
	return f.record("deleteanswer", id)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"signin",
		"l",
		"show q1",
		"ask",
		"answer q1",
		"edit q1",
		"editanswer a1",
		"deleteanswer a1",
		"delete q1",
		"me",
		"signout",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	want := []string{"signin", "list", "show q1", "ask", "answer q1", "edit q1",
		"editanswer a1", "deleteanswer a1", "delete q1", "me", "signout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("show\nedit a b\nfoobar\nquit\n")
	exec := &fakeExec{signedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*out, "\n")
	for _, want := range []string{"Usage:show <question-id>", "Usage:edit <question-id>", "Unknown command:foobar", "Bye!"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("output %q missing %q", joined, want)
		}
	}
}

func TestRunREPL_ErrorsDoNotStopLoop(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("forbidden: You must be Tier 2 or higher to answer questions")}
	input := strings.NewReader("answer q1\nlist")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	if len(exec.calls) != 2 {
		t.Fatalf("expected both commands to run, got %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*out, "\n"), "Tier 2") {
		t.Fatalf("error not reported: %v", *out)
	}
}
