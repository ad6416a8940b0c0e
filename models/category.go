package models

import "time"

// Category groups tasks. The name is unique.
type Category struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
