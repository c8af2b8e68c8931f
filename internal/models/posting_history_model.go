package models

import "time"

type GenerationHistoryItem struct {
	ID      string    `db:"id" json:"id"`
	Content string    `db:"content" json:"content"`
	Date    time.Time `db:"date" json:"date"`
}

const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)

// Suggestion is an Autopilot draft waiting for the user's decision.
type Suggestion struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	PostID    string    `json:"postId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
