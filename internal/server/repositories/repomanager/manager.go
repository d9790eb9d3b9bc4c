package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/answers"
)

// RepositoryManager vends repositories bound to a caller-chosen handle, so a
// service can run them on a pooled connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Answers(db dbx.DBTX) answers.Repository
}
