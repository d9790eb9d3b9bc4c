package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/wordsearch/internal/client/client"
)

type fakeClient struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginErr  error

	checkCategory string
	checkAnswer   string
	checkOK       bool
	checkErr      error

	users    map[string]string
	usersErr error

	pingErr error

	live    *fakeLive
	liveErr error

	loggedOut bool
	closed    bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Register(_ context.Context, userID string, password []byte) error {
	f.regUser, f.regPass = userID, append([]byte(nil), password...)
	return f.regErr
}

func (f *fakeClient) Login(_ context.Context, userID string, _ []byte) error {
	f.loginUser = userID
	return f.loginErr
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) CheckAnswer(_ context.Context, category, answer string) (bool, error) {
	f.checkCategory, f.checkAnswer = category, answer
	return f.checkOK, f.checkErr
}

func (f *fakeClient) Users(context.Context) (map[string]string, error) { return f.users, f.usersErr }

func (f *fakeClient) OpenLive(context.Context) (client.LiveChannel, error) {
	if f.liveErr != nil {
		return nil, f.liveErr
	}
	return f.live, nil
}

type fakeLive struct {
	sent   []string
	closed bool
}

func (l *fakeLive) Submit(answer string) ([]string, error) {
	l.sent = append(l.sent, answer)
	return append([]string(nil), l.sent...), nil
}

func (l *fakeLive) Close() error { l.closed = true; return nil }

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
}

func newTestApp(c *fakeClient, input ...string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		client: c,
		reader: bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:    &out,
	}, &out
}
