package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// enqueuer is the part of *asynq.Client the scheduler needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func EnqueuePostLive(ctx context.Context, client enqueuer, payload PostLivePayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePostLive, taskPayload)
	taskID := fmt.Sprintf("%s:%s:%d", TaskTypePostLive, payload.PostID, payload.ScheduledAt.Unix())

	_, err = client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.TaskID(taskID))
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return err
	}

	log.Printf("Task scheduled: %+v", payload)
	return nil
}

// Scheduler queues post-live tasks for scheduled posts.
type Scheduler struct {
	client enqueuer
	now    func() time.Time
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client, now: time.Now}
}

func (s *Scheduler) SchedulePostLive(ctx context.Context, postID string, at time.Time) error {
	delay := at.Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	return EnqueuePostLive(ctx, s.client, PostLivePayload{PostID: postID, ScheduledAt: at}, delay)
}
