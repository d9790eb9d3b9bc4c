package models

import "time"

// Account is a registered user. UserID is the external identifier chosen at
// registration; ID is assigned by storage. Password holds the stored
// credential (a salted argon2id hash).
type Account struct {
	ID        string
	UserID    string
	Password  string
	CreatedAt time.Time
}
