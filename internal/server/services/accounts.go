// Package services contains server-side business logic: account
// registration and login, token resolution, and answer checking.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/cryptox"
	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/repomanager"
)

// TokenIssuer signs access tokens at login.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
}

// TokenGrant is what a successful login hands back to the client.
type TokenGrant struct {
	AccessToken string
	TokenType   string
}

// AccountService handles registration, login and the account listing.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	tokenTTL    time.Duration
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		tokenTTL:    tokenTTL,
	}
}

// hashPassword and checkPassword are replaced in tests.
var (
	hashPassword  = cryptox.HashPassword
	checkPassword = cryptox.CheckPassword
)

// Register creates an account. The existence check and the insert share one
// transaction; the UNIQUE constraint catches a concurrent registration.
func (s *AccountService) Register(ctx context.Context, userID, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			return common.ErrDuplicateAccount
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		_, err = repo.Create(ctx, newAccount(userID, hash))
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return common.ErrDuplicateAccount
		}
		return storageFailure(err)
	}

	return nil
}

// Login checks the credential and issues an access token whose subject is
// the account's external id.
func (s *AccountService) Login(ctx context.Context, userID, password string) (*TokenGrant, error) {
	account, err := s.findAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownAccount
		}
		return nil, storageFailure(err)
	}

	ok, err := checkPassword(account.Password, password)
	if err != nil {
		return nil, storageFailure(fmt.Errorf("stored credential for %q: %w", userID, err))
	}
	if !ok {
		return nil, common.ErrBadCredential
	}

	token, err := s.tokens.Issue(account.UserID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenGrant{AccessToken: token, TokenType: common.TokenType}, nil
}

// ListAccounts maps every external id to its stored credential.
func (s *AccountService) ListAccounts(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		list, err := s.repomanager.Accounts(conn).List(ctx)
		if err != nil {
			return err
		}
		for _, a := range list {
			result[a.UserID] = a.Password
		}
		return nil
	})
	if err != nil {
		return nil, storageFailure(err)
	}

	return result, nil
}
