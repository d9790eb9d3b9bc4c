package services

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/models"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/answers"
)

// ---- helpers ----

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// useCheapHashing swaps argon2id for a reversible stand-in for the duration of t.
func useCheapHashing(t *testing.T) {
	t.Helper()
	origHash, origCheck := hashPassword, checkPassword
	t.Cleanup(func() { hashPassword, checkPassword = origHash, origCheck })

	hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
	checkPassword = func(hash, p string) (bool, error) { return hash == "hashed:"+p, nil }
}

// ---- fakes ----

type fakeAccountsRepo struct {
	byUserID map[string]*models.Account
	calls    int

	getErr    error
	createErr error
	listErr   error
}

func newFakeAccountsRepo(accs ...*models.Account) *fakeAccountsRepo {
	r := &fakeAccountsRepo{byUserID: map[string]*models.Account{}}
	for _, a := range accs {
		r.byUserID[a.UserID] = a
	}
	return r
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byUserID[a.UserID]; ok {
		return nil, common.ErrDuplicateAccount
	}
	a.ID = strconv.Itoa(len(f.byUserID) + 1)
	a.CreatedAt = time.Now()
	f.byUserID[a.UserID] = a
	return a, nil
}

func (f *fakeAccountsRepo) GetByUserID(ctx context.Context, userID string) (*models.Account, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byUserID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

func (f *fakeAccountsRepo) List(ctx context.Context) ([]*models.Account, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Account, 0, len(f.byUserID))
	for _, a := range f.byUserID {
		out = append(out, a)
	}
	return out, nil
}

type fakeAnswersRepo struct {
	byCategory map[string][]string
	calls      int

	listErr   error
	createErr error
}

func (f *fakeAnswersRepo) ListByCategory(ctx context.Context, category string) ([]string, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string{}, f.byCategory[category]...), nil
}

func (f *fakeAnswersRepo) Create(ctx context.Context, category, answer string) (bool, error) {
	f.calls++
	if f.createErr != nil {
		return false, f.createErr
	}
	if f.byCategory == nil {
		f.byCategory = map[string][]string{}
	}
	for _, a := range f.byCategory[category] {
		if a == answer {
			return false, nil
		}
	}
	f.byCategory[category] = append(f.byCategory[category], answer)
	return true, nil
}

type fakeRepoManager struct {
	accounts *fakeAccountsRepo
	answers  *fakeAnswersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository      { return m.accounts }
func (m *fakeRepoManager) Answers(dbx.DBTX) answers.Repository        { return m.answers }

type fakeIssuer struct {
	calls int
	err   error
}

func (f *fakeIssuer) Issue(subject string, ttl time.Duration) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}

type fakeValidator struct{}

func (fakeValidator) Validate(token string) (string, error) {
	sub, ok := strings.CutPrefix(token, "token-for-")
	if !ok {
		return "", common.ErrInvalidToken
	}
	return sub, nil
}
