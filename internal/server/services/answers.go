package services

import (
	"context"
	"database/sql"
	"sort"

	"github.com/dmitrijs2005/wordsearch/internal/dbx"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/repomanager"
)

// AnswerService checks submitted answers against the accepted set of a category.
type AnswerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAnswerService(db *sql.DB, m repomanager.RepositoryManager) *AnswerService {
	return &AnswerService{db: db, repomanager: m}
}

// Check reports whether candidate is one of the accepted answers for
// category. Matching is exact and case-sensitive; an unknown category
// accepts nothing.
func (s *AnswerService) Check(ctx context.Context, category, candidate string) (bool, error) {
	var accepted []string
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		accepted, err = s.repomanager.Answers(conn).ListByCategory(ctx, category)
		return err
	})
	if err != nil {
		return false, storageFailure(err)
	}

	_, ok := answerSet(accepted)[candidate]
	return ok, nil
}

func answerSet(answers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		set[a] = struct{}{}
	}
	return set
}

// Seed inserts every (category, answer) pair not yet stored, in one
// transaction, and returns how many rows were added.
func (s *AnswerService) Seed(ctx context.Context, keys map[string][]string) (int, error) {
	categories := make([]string, 0, len(keys))
	for c := range keys {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	added := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Answers(tx)
		for _, category := range categories {
			for _, answer := range keys[category] {
				created, err := repo.Create(ctx, category, answer)
				if err != nil {
					return err
				}
				if created {
					added++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, storageFailure(err)
	}

	return added, nil
}
