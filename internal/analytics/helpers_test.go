package analytics

import (
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

var testNow = time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)

func i64(v int64) *int64 { return &v }

func published(id string, at time.Time, views, likes, comments int64) *models.Post {
	t := at
	return &models.Post{
		ID:          id,
		Content:     "post " + id,
		Status:      models.PostStatusScheduled,
		ScheduledAt: &t,
		Views:       i64(views),
		Likes:       i64(likes),
		Comments:    i64(comments),
		TaskStatus:  models.TaskStatusCompleted,
	}
}

func withImage(p *models.Post) *models.Post {
	img := "https://cdn.example.com/" + p.ID + ".png"
	p.Image = &img
	return p
}

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}
