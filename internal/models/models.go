package models

import "time"

// User is an account row. Password holds the bcrypt hash and is never
// serialized; OAuth accounts have GoogleID set and no password.
type User struct {
	ID        int64     `json:"id,omitempty"`
	GoogleID  string    `json:"google_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Picture   string    `json:"picture,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Note belongs to exactly one owner: UserID for password accounts,
// GoogleID for OAuth accounts. The unset one marshals as null, which is
// what the client expects.
type Note struct {
	ID       int64   `json:"id"`
	UserID   *int64  `json:"user_id"`
	GoogleID *string `json:"google_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
}
