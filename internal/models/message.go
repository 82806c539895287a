package models

import "time"

const (
	MessageActive  = "active"
	MessageDeleted = "deleted"
)

// MaxMessageLength bounds message content after trimming.
const MaxMessageLength = 1000

// Message carries a username snapshot taken at creation time; renaming a
// user does not rewrite history.
type Message struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// joined from users: role on the public listing, email on the admin one
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}
