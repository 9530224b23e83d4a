package models

import "time"

// Admin is a console operator account. PasswordHash is the encoded argon2id
// hash, never the raw password.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
