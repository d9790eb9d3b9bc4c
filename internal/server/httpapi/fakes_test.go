package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/dmitrijs2005/wordsearch/internal/server/models"
	"github.com/dmitrijs2005/wordsearch/internal/server/services"
)

type fakeAccounts struct {
	users       map[string]string
	registerErr error
	loginErr    error
	listErr     error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{users: map[string]string{}}
}

func (f *fakeAccounts) Register(ctx context.Context, userID, password string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	if _, ok := f.users[userID]; ok {
		return common.ErrDuplicateAccount
	}
	f.users[userID] = password
	return nil
}

func (f *fakeAccounts) Login(ctx context.Context, userID, password string) (*services.TokenGrant, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	stored, ok := f.users[userID]
	if !ok {
		return nil, common.ErrUnknownAccount
	}
	if stored != password {
		return nil, common.ErrBadCredential
	}
	return &services.TokenGrant{AccessToken: "token-for-" + userID, TokenType: common.TokenType}, nil
}

func (f *fakeAccounts) ListAccounts(ctx context.Context) (map[string]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

type fakeAnswers struct {
	keys  map[string][]string
	err   error
	calls int
}

func (f *fakeAnswers) Check(ctx context.Context, category, candidate string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.keys[category] {
		if a == candidate {
			return true, nil
		}
	}
	return false, nil
}

// fakeGuard accepts tokens issued by fakeAccounts for known users.
type fakeGuard struct {
	accounts *fakeAccounts
	err      error
}

func (g *fakeGuard) Resolve(ctx context.Context, token string) (*models.Account, error) {
	if g.err != nil {
		return nil, g.err
	}
	userID, ok := strings.CutPrefix(token, "token-for-")
	if !ok {
		return nil, common.ErrUnauthorized
	}
	if _, ok := g.accounts.users[userID]; !ok {
		return nil, common.ErrUnauthorized
	}
	return &models.Account{ID: "1", UserID: userID}, nil
}

type fixture struct {
	accounts *fakeAccounts
	answers  *fakeAnswers
	guard    *fakeGuard
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	acc := newFakeAccounts()
	ans := &fakeAnswers{keys: map[string][]string{"animals": {"cat", "dog"}}}
	g := &fakeGuard{accounts: acc}
	return &fixture{
		accounts: acc,
		answers:  ans,
		guard:    g,
		handler:  NewRouter(RouterDeps{Accounts: acc, Answers: ans, Guard: g, Logger: logging.Nop{}}),
	}
}

func (f *fixture) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}
