package answers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wordsearch/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]string, error) {
	query := `
		SELECT answer FROM answers
		WHERE category = $1
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var answer string
		if err := rows.Scan(&answer); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category, answer string) (bool, error) {
	query := `
		INSERT INTO answers (category, answer)
		VALUES ($1, $2)
		ON CONFLICT (category, answer) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, category, answer)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}
