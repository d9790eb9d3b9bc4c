package models

// AnswerKey is one accepted answer for a category. A category usually has
// many of them.
type AnswerKey struct {
	ID       string
	Category string
	Answer   string
}
