package models

import "time"

// User represents a user a task can be assigned to. Users are managed
// elsewhere; this service only lists them. The password hash never leaves
// the database.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
