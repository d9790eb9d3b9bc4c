package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/models"
)

func newAccount(userID, hash string) *models.Account {
	return &models.Account{UserID: userID, Password: hash}
}

// storageFailure tags err as common.ErrStorageFailure while keeping the
// cause available for logs.
func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
}

func (s *AccountService) findAccount(ctx context.Context, userID string) (*models.Account, error) {
	var account *models.Account
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		account, err = s.repomanager.Accounts(conn).GetByUserID(ctx, userID)
		return err
	})
	return account, err
}
