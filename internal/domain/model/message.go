package model

import "time"

// Message is a direct message between two users. Rows are immutable except
// for the read flag.
type Message struct {
	ID        string
	FromUser  string
	ToUser    string
	Content   string
	Read      bool
	CreatedAt time.Time
}

// Counterpart returns the other participant relative to userID.
func (m Message) Counterpart(userID string) string {
	if m.FromUser == userID {
		return m.ToUser
	}
	return m.FromUser
}
