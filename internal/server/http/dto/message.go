package dto

import "time"

// SendMessageRequest describes the direct message payload.
type SendMessageRequest struct {
	ToUser  string `json:"to_user"`
	Content string `json:"content"`
}

// MessageResponse is the public view of a direct message.
type MessageResponse struct {
	ID        string    `json:"id"`
	FromUser  string    `json:"from_user"`
	ToUser    string    `json:"to_user"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadResponse is one conversation summary on the inbox screen.
type ThreadResponse struct {
	CounterpartID string           `json:"counterpart_id"`
	Counterpart   *ProfileResponse `json:"counterpart,omitempty"`
	LastMessage   MessageResponse  `json:"last_message"`
	UnreadCount   int              `json:"unread_count"`
}

// MarkReadResponse reports how many messages were flipped to read.
type MarkReadResponse struct {
	Marked int64 `json:"marked"`
}
