// internal/domain/auth/entity.go
package auth

import "time"

// User is a staff account bound to one tenant. Password hashes are bcrypt.
type User struct {
	ID           string    `json:"id" db:"id"`
	TenantID     string    `json:"company_id" db:"company_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
