package analytics

import (
	"time"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
)

type DailyPoint struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	Impressions int64     `json:"impressions"`
	Engagement  int64     `json:"engagement"`
}

// DailySeries returns exactly days points, one per calendar day in loc from
// days-1 days ago through today. Days without posts are zero.
func DailySeries(posts []*models.Post, days int, now time.Time, loc *time.Location, lang string) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}
	if loc == nil {
		loc = time.UTC
	}

	today := midnight(now, loc)
	points := make([]DailyPoint, days)
	index := make(map[time.Time]int, days)
	for i := range points {
		d := today.AddDate(0, 0, -(days - 1 - i))
		points[i] = DailyPoint{Date: d, Label: i18n.ShortDate(lang, d)}
		index[d] = i
	}

	for _, p := range posts {
		if p.ScheduledAt == nil {
			continue
		}
		i, ok := index[midnight(*p.ScheduledAt, loc)]
		if !ok {
			continue
		}
		points[i].Impressions += p.ViewCount()
		points[i].Engagement += p.Engagement()
	}
	return points
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
