package analytics

import (
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

// Report is everything the statistics page renders for one range.
type Report struct {
	Range          string       `json:"range"`
	Period         Period       `json:"period"`
	HasData        bool         `json:"hasData"`
	Totals         Totals       `json:"totals"`
	PreviousTotals Totals       `json:"previousTotals"`
	Comparison     Comparison   `json:"comparison"`
	Series         []DailyPoint `json:"series"`
	TopPosts       []RankedPost `json:"topPosts"`
	BestPost       *RankedPost  `json:"bestPost"`
	Insights       []string     `json:"insights"`
}

// BuildReport runs the whole pipeline: window selection, aggregation of both
// windows, then series, ranking and insights over the current window.
func BuildReport(posts []*models.Post, rangeToken string, now time.Time, loc *time.Location, lang string) Report {
	rangeToken = NormalizeRange(rangeToken)
	period := NewPeriod(RangeDays(rangeToken), now)
	current, previous := period.Partition(posts, now)

	totals := Aggregate(current)
	prevTotals := Aggregate(previous)
	top := TopPosts(current, TopPostsLimit)

	var best *RankedPost
	if len(top) > 0 {
		b := top[0]
		best = &b
	}

	return Report{
		Range:          rangeToken,
		Period:         period,
		HasData:        len(current) > 0,
		Totals:         totals,
		PreviousTotals: prevTotals,
		Comparison:     Compare(totals, prevTotals),
		Series:         DailySeries(current, period.Days, now, loc, lang),
		TopPosts:       top,
		BestPost:       best,
		Insights:       Insights(current, totals, best, loc, lang),
	}
}

// ValidUntil returns the first moment after now at which BuildReport over the
// same posts may produce a different result. That is the earliest of: a
// scheduled post going live, a published post leaving the current or previous
// window, and the next local midnight, which shifts the daily series.
func ValidUntil(posts []*models.Post, rangeToken string, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)

	span := time.Duration(RangeDays(NormalizeRange(rangeToken))) * day
	for _, post := range posts {
		if post.Status != models.PostStatusScheduled || post.ScheduledAt == nil {
			continue
		}
		at := *post.ScheduledAt
		for _, edge := range []time.Time{at, at.Add(span), at.Add(2 * span)} {
			if edge.After(now) && edge.Before(next) {
				next = edge
			}
		}
	}
	return next
}
