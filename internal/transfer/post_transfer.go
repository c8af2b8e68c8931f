package transfer

import "time"

type PostCreation struct {
	Content string  `json:"content"`
	Image   *string `json:"image"`
}

type PostSchedule struct {
	ScheduledAt time.Time `json:"scheduledAt"`
}

type TaskStatusUpdate struct {
	TaskStatus string `json:"taskStatus"`
}

type PostPreview struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

type DraftCreation struct {
	Content string `json:"content"`
}
