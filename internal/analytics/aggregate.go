package analytics

import (
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

type Totals struct {
	Impressions    int64   `json:"impressions"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	Engagement     int64   `json:"engagement"`
	EngagementRate float64 `json:"engagementRate"`
}

// Aggregate sums views, likes and comments, counting missing values as zero.
func Aggregate(posts []*models.Post) Totals {
	var t Totals
	for _, p := range posts {
		t.Impressions += p.ViewCount()
		t.Likes += p.LikeCount()
		t.Comments += p.CommentCount()
	}
	t.Engagement = t.Likes + t.Comments
	t.EngagementRate = EngagementRate(t.Engagement, t.Impressions)
	return t
}

// EngagementRate is engagement per impression as a percentage, 0 without impressions.
func EngagementRate(engagement, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(engagement) / float64(impressions) * 100
}

// PercentageChange compares current against previous. Growth from zero is
// reported as exactly 100, and no change from zero as 0.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

type Metric struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}

func NewMetric(current, previous float64) Metric {
	return Metric{Current: current, Previous: previous, Change: PercentageChange(current, previous)}
}

// Comparison holds the dashboard cards: each metric against the previous period.
type Comparison struct {
	Impressions    Metric `json:"impressions"`
	EngagementRate Metric `json:"engagementRate"`
	Likes          Metric `json:"likes"`
	Comments       Metric `json:"comments"`
	Engagement     Metric `json:"engagement"`
}

func Compare(current, previous Totals) Comparison {
	return Comparison{
		Impressions:    NewMetric(float64(current.Impressions), float64(previous.Impressions)),
		EngagementRate: NewMetric(current.EngagementRate, previous.EngagementRate),
		Likes:          NewMetric(float64(current.Likes), float64(previous.Likes)),
		Comments:       NewMetric(float64(current.Comments), float64(previous.Comments)),
		Engagement:     NewMetric(float64(current.Engagement), float64(previous.Engagement)),
	}
}

// Summary is the all-time panel view.
type Summary struct {
	PublishedPosts        int     `json:"publishedPosts"`
	ScheduledPosts        int     `json:"scheduledPosts"`
	DraftPosts            int     `json:"draftPosts"`
	Totals                Totals  `json:"totals"`
	AverageEngagementRate float64 `json:"averageEngagementRate"`
}

// Overview aggregates every published post. The average engagement rate only
// looks at posts with at least one view so unmeasured posts do not drag it down.
func Overview(posts []*models.Post, now time.Time) Summary {
	var s Summary
	var published, measured []*models.Post
	for _, p := range posts {
		switch p.DisplayStatus(now) {
		case models.PostStatusDraft:
			s.DraftPosts++
		case models.PostStatusScheduled:
			s.ScheduledPosts++
		default:
			if !p.IsPublished(now) {
				continue
			}
			published = append(published, p)
			if p.ViewCount() > 0 {
				measured = append(measured, p)
			}
		}
	}
	s.PublishedPosts = len(published)
	s.Totals = Aggregate(published)
	m := Aggregate(measured)
	s.AverageEngagementRate = EngagementRate(m.Engagement, m.Impressions)
	return s
}
