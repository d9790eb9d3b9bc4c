// Package accounts declares the account repository contract and its
// PostgreSQL implementation.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/wordsearch/internal/server/models"
)

// Repository defines persistence operations for accounts.
type Repository interface {
	// Create inserts the account and fills in ID and CreatedAt. A second
	// account with the same UserID yields common.ErrDuplicateAccount.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByUserID returns common.ErrorNotFound when nothing matches.
	GetByUserID(ctx context.Context, userID string) (*models.Account, error)

	// List returns every account ordered by ID.
	List(ctx context.Context) ([]*models.Account, error)
}
