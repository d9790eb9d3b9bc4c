package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/answers"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// newPingDB is newDB with ping expectations enabled.
func newPingDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)

	m := NewPostgresRepositoryManager()

	var _ accounts.Repository = m.Accounts(db)
	var _ answers.Repository = m.Answers(db)
	assert.NotNil(t, m.Accounts(db))
	assert.NotNil(t, m.Answers(db))
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	assert.EqualError(t, err, "boom")
}

func TestOpenPostgres(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	t.Run("ok", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()
		sqlOpen = func(driver, dsn string) (*sql.DB, error) {
			assert.Equal(t, "pgx", driver)
			return db, nil
		}

		got, err := OpenPostgres(context.Background(), "postgres://x")
		require.NoError(t, err)
		assert.Same(t, db, got)
	})

	t.Run("ping fails", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillReturnError(errors.New("refused"))
		sqlOpen = func(driver, dsn string) (*sql.DB, error) { return db, nil }

		_, err := OpenPostgres(context.Background(), "postgres://x")
		assert.ErrorContains(t, err, "db ping error: refused")
	})

	t.Run("open fails", func(t *testing.T) {
		sqlOpen = func(driver, dsn string) (*sql.DB, error) { return nil, errors.New("no driver") }

		_, err := OpenPostgres(context.Background(), "postgres://x")
		assert.ErrorContains(t, err, "db open error: no driver")
	})
}
