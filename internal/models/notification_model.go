package models

import "time"

const (
	NotificationComment = "comment"
	NotificationLike    = "like"
	NotificationSystem  = "system"
)

type Notification struct {
	ID        string    `db:"id" json:"id"`
	Type      string    `db:"type" json:"type"`
	Read      bool      `db:"read" json:"read"`
	Text      string    `db:"text" json:"text"`
	PostID    string    `db:"post_id" json:"postId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
