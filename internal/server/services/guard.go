package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/models"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/repomanager"
)

// TokenValidator turns a token back into its subject.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// Guard resolves a bearer token to the account it was issued for.
type Guard struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenValidator
}

func NewGuard(db *sql.DB, m repomanager.RepositoryManager, tokens TokenValidator) *Guard {
	return &Guard{db: db, repomanager: m, tokens: tokens}
}

// Resolve fails with common.ErrUnauthorized when the token is rejected or its
// subject no longer exists. A rejected token never touches storage.
func (g *Guard) Resolve(ctx context.Context, token string) (*models.Account, error) {
	subject, err := g.tokens.Validate(token)
	if err != nil {
		return nil, errors.Join(common.ErrUnauthorized, err)
	}

	var account *models.Account
	err = dbx.WithConn(ctx, g.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		account, err = g.repomanager.Accounts(conn).GetByUserID(ctx, subject)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, storageFailure(err)
	}

	return account, nil
}
