package user

import (
	"time"
)

// User is the domain entity, mapped 1:1 to the users table.
// Rows are created by signup and never mutated or deleted afterwards.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"` // globally unique, case-sensitive

	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ToDTO strips everything a client must not see.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
	}
}
