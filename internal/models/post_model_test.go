package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostPredicates(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		post      Post
		published bool
		future    bool
		display   string
	}{
		{"draft", Post{Status: PostStatusDraft}, false, false, PostStatusDraft},
		{"scheduled in the past", Post{Status: PostStatusScheduled, ScheduledAt: &past}, true, false, PostStatusPublished},
		{"scheduled exactly now", Post{Status: PostStatusScheduled, ScheduledAt: &now}, true, false, PostStatusPublished},
		{"scheduled in the future", Post{Status: PostStatusScheduled, ScheduledAt: &future}, false, true, PostStatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.published, tt.post.IsPublished(now))
			assert.Equal(t, tt.future, tt.post.IsScheduledFuture(now))
			assert.Equal(t, tt.display, tt.post.DisplayStatus(now))
		})
	}
}

func TestPostCountsTreatMissingAsZero(t *testing.T) {
	likes := int64(7)
	p := Post{Likes: &likes}

	assert.Equal(t, int64(0), p.ViewCount())
	assert.Equal(t, int64(7), p.Engagement())
	assert.False(t, p.HasImage())
}

func TestPostCloneDoesNotShareFields(t *testing.T) {
	at := time.Now()
	img := "https://cdn.example.com/a.png"
	views := int64(10)
	p := &Post{ID: "a", ScheduledAt: &at, Image: &img, Views: &views}

	c := p.Clone()
	*c.Views = 99
	*c.Image = "other"

	assert.Equal(t, int64(10), *p.Views)
	assert.Equal(t, "https://cdn.example.com/a.png", *p.Image)
}
