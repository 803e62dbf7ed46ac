package models

import "time"

// User represents a provider (field staff member) row in the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
