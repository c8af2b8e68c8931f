package queue

import (
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/kolink/internal/service"
)

// Queue runs the background tasks of the dashboard.
type Queue struct {
	ns service.NotificationService
}

func NewQueue(ns service.NotificationService) *Queue {
	return &Queue{ns: ns}
}

// Register attaches every task handler to mux.
func (q *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypePostLive, q.HandlePostLiveTask)
}

const TaskTypePostLive = "post:live"

// PostLivePayload identifies one scheduling of a post. ScheduledAt lets the
// handler ignore tasks left over from an earlier schedule.
type PostLivePayload struct {
	PostID      string    `json:"post_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}
