package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandlePostLiveTask(ctx context.Context, task *asynq.Task) error {
	var payload PostLivePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", TaskTypePostLive, err, asynq.SkipRetry)
	}

	return q.ns.PostWentLive(ctx, payload.PostID, payload.ScheduledAt)
}
