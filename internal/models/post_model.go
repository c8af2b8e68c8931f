package models

import "time"

type Post struct {
	ID          string     `db:"id" json:"id"`
	Content     string     `db:"content" json:"content"`
	Status      string     `db:"status" json:"status"` // draft, scheduled
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduledAt"`
	Image       *string    `db:"image" json:"image"`
	Views       *int64     `db:"views" json:"views,omitempty"`
	Likes       *int64     `db:"likes" json:"likes,omitempty"`
	Comments    *int64     `db:"comments" json:"comments,omitempty"`
	TaskStatus  string     `db:"task_status" json:"taskStatus"` // todo, inprogress, completed
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"

	// PostStatusPublished is never stored. It is the display classification of a
	// scheduled post whose time has passed.
	PostStatusPublished = "published"
)

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "inprogress"
	TaskStatusCompleted  = "completed"
)

func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// IsPublished reports whether the post counts as live at now.
func (p *Post) IsPublished(now time.Time) bool {
	return p.Status == PostStatusScheduled && p.ScheduledAt != nil && !p.ScheduledAt.After(now)
}

// IsScheduledFuture reports whether the post is queued for a time after now.
func (p *Post) IsScheduledFuture(now time.Time) bool {
	return p.Status == PostStatusScheduled && p.ScheduledAt != nil && p.ScheduledAt.After(now)
}

// DisplayStatus classifies the post the way the list view filters it.
func (p *Post) DisplayStatus(now time.Time) string {
	if p.Status == PostStatusDraft {
		return PostStatusDraft
	}
	if p.IsScheduledFuture(now) {
		return PostStatusScheduled
	}
	return PostStatusPublished
}

func (p *Post) HasImage() bool {
	return p.Image != nil && *p.Image != ""
}

func (p *Post) ViewCount() int64 {
	if p.Views == nil {
		return 0
	}
	return *p.Views
}

func (p *Post) LikeCount() int64 {
	if p.Likes == nil {
		return 0
	}
	return *p.Likes
}

func (p *Post) CommentCount() int64 {
	if p.Comments == nil {
		return 0
	}
	return *p.Comments
}

// Engagement is likes plus comments, missing values counting as zero.
func (p *Post) Engagement() int64 {
	return p.LikeCount() + p.CommentCount()
}

// Clone returns a deep copy so stores can hand out posts without sharing pointers.
func (p *Post) Clone() *Post {
	c := *p
	if p.ScheduledAt != nil {
		t := *p.ScheduledAt
		c.ScheduledAt = &t
	}
	if p.Image != nil {
		s := *p.Image
		c.Image = &s
	}
	if p.Views != nil {
		v := *p.Views
		c.Views = &v
	}
	if p.Likes != nil {
		v := *p.Likes
		c.Likes = &v
	}
	if p.Comments != nil {
		v := *p.Comments
		c.Comments = &v
	}
	return &c
}
