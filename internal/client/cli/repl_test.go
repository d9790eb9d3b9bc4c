package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Check(_ context.Context, category string) error {
	f.calls = append(f.calls, "check "+category)
	return nil
}
func (f *fakeExec) Live(context.Context) error  { f.calls = append(f.calls, "live"); return nil }
func (f *fakeExec) Users(context.Context) error { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) Ping(context.Context) error  { f.calls = append(f.calls, "ping"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func runWith(exec *fakeExec, lines ...string) string {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, in, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runWith(exec,
		"help",
		"register",
		"login",
		"help",
		"",
		"check animals",
		"check",
		"live",
		"users",
		"ping",
		"logout",
		"foobar",
		"exit",
		"register",
	)

	assert.Equal(t, []string{"register", "login", "check animals", "live", "users", "ping", "logout"}, exec.calls)
	assert.Contains(t, out, "Available commands: register")
	assert.Contains(t, out, "Available commands: check <category>")
	assert.Contains(t, out, "Usage: check <category>")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runWith(exec, "users")

	assert.Equal(t, []string{"users"}, exec.calls)
}
