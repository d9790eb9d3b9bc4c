// Package answers stores the accepted answers per category.
package answers

import "context"

// Repository defines read and seed operations over answer keys.
type Repository interface {
	// ListByCategory returns every accepted answer for category. An unknown
	// category yields an empty slice, not an error.
	ListByCategory(ctx context.Context, category string) ([]string, error)

	// Create adds an accepted answer. It reports false when the pair
	// already existed.
	Create(ctx context.Context, category, answer string) (bool, error)
}
