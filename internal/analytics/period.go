// Package analytics computes the statistics dashboard: period windows,
// engagement totals, daily series, top posts and rule-based insights.
// Every function is pure; callers pass the clock and location in.
package analytics

import (
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

const (
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"

	DefaultRange = Range30d
)

const day = 24 * time.Hour

// RangeDays maps a range token to its length in days. Unknown tokens fall back
// to the dashboard default of 30 days.
func RangeDays(token string) int {
	switch token {
	case Range7d:
		return 7
	case Range90d:
		return 90
	}
	return 30
}

// NormalizeRange returns token if it is a known range, else DefaultRange.
func NormalizeRange(token string) string {
	switch token {
	case Range7d, Range30d, Range90d:
		return token
	}
	return DefaultRange
}

// Period is a window of Days days ending at End, and the window of equal
// length right before it.
type Period struct {
	Days      int       `json:"days"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	PrevStart time.Time `json:"prevStart"`
	PrevEnd   time.Time `json:"prevEnd"`
}

func NewPeriod(days int, now time.Time) Period {
	span := time.Duration(days) * day
	start := now.Add(-span)
	return Period{
		Days:      days,
		Start:     start,
		End:       now,
		PrevStart: start.Add(-span),
		PrevEnd:   start,
	}
}

// InCurrent reports whether t lies in [Start, End].
func (p Period) InCurrent(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// InPrevious reports whether t lies in [PrevStart, PrevEnd).
func (p Period) InPrevious(t time.Time) bool {
	return !t.Before(p.PrevStart) && t.Before(p.PrevEnd)
}

// Partition keeps the posts published at now and splits them between the
// current and previous windows. Input order is preserved.
func (p Period) Partition(posts []*models.Post, now time.Time) (current, previous []*models.Post) {
	for _, post := range posts {
		if !post.IsPublished(now) {
			continue
		}
		at := *post.ScheduledAt
		switch {
		case p.InCurrent(at):
			current = append(current, post)
		case p.InPrevious(at):
			previous = append(previous, post)
		}
	}
	return current, previous
}
