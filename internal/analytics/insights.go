package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

const snippetLength = 30

var snippetPolicy = bluemonday.StrictPolicy()

// Insights runs the insight rules in their fixed order over the current
// period's posts. Order matters: the dashboard renders the list as returned.
// Messages may contain <strong> markup; user text inside them is escaped.
func Insights(posts []*models.Post, totals Totals, best *RankedPost, loc *time.Location, lang string) []string {
	if loc == nil {
		loc = time.UTC
	}
	insights := make([]string, 0, 6)

	if len(posts) > 0 {
		insights = append(insights, i18n.T(lang, i18n.KeyTotalPosts, map[string]string{
			"count": strconv.Itoa(len(posts)),
		}))
		avg := int64(math.Round(float64(totals.Impressions) / float64(len(posts))))
		insights = append(insights, i18n.T(lang, i18n.KeyAvgImpressions, map[string]string{
			"avgImpressions": i18n.FormatInt(lang, avg),
		}))
	}

	if best != nil && best.Post != nil {
		insights = append(insights, i18n.T(lang, i18n.KeyBestPost, map[string]string{
			"impressions": i18n.FormatInt(lang, best.ViewCount()),
			"postTitle":   Snippet(best.Content),
		}))
	}

	if totals.Engagement > 0 {
		insights = append(insights, i18n.T(lang, i18n.KeyTotalEngagement, map[string]string{
			"engagement": i18n.FormatInt(lang, totals.Engagement),
		}))
	}

	if len(posts) > 0 {
		if weekday, ok := BestWeekday(posts, loc); ok {
			insights = append(insights, i18n.T(lang, i18n.KeyBestDay, map[string]string{
				"day": i18n.Weekdays(lang)[weekday],
			}))
		}
	}

	if withImage, uplift, ok := ImageUplift(posts); ok {
		typeKey := i18n.KeyPostTypeNoImage
		if withImage {
			typeKey = i18n.KeyPostTypeWithImage
		}
		insights = append(insights, i18n.T(lang, i18n.KeyBestPostType, map[string]string{
			"type":    i18n.T(lang, typeKey, nil),
			"percent": fmt.Sprintf("%.0f", uplift),
		}))
	}

	if len(insights) == 0 {
		insights = append(insights, i18n.T(lang, i18n.KeyNoBestPost, nil))
	}
	if len(insights) < 3 {
		insights = append(insights, i18n.T(lang, i18n.KeyDefaultTip, nil))
	}
	return insights
}

// BestWeekday sums impressions per weekday (time.Weekday numbering, Sunday = 0)
// and returns the busiest one. Ties go to the lowest weekday index. ok is
// false when no impressions were recorded at all.
func BestWeekday(posts []*models.Post, loc *time.Location) (time.Weekday, bool) {
	var byDay [7]int64
	var total int64
	for _, p := range posts {
		if p.ScheduledAt == nil {
			continue
		}
		byDay[p.ScheduledAt.In(loc).Weekday()] += p.ViewCount()
		total += p.ViewCount()
	}
	if total <= 0 {
		return 0, false
	}
	best := time.Sunday
	for d := time.Monday; d <= time.Saturday; d++ {
		if byDay[d] > byDay[best] {
			best = d
		}
	}
	return best, true
}

// ImageUplift compares average engagement of posts with and without an image.
// It reports which side wins and by how many percent. ok is false when either
// side is empty, the averages are equal, or the losing side averages zero.
func ImageUplift(posts []*models.Post) (withImage bool, percent float64, ok bool) {
	var withSum, withoutSum int64
	var withCount, withoutCount int
	for _, p := range posts {
		if p.HasImage() {
			withSum += p.Engagement()
			withCount++
		} else {
			withoutSum += p.Engagement()
			withoutCount++
		}
	}
	if withCount == 0 || withoutCount == 0 {
		return false, 0, false
	}
	withAvg := float64(withSum) / float64(withCount)
	withoutAvg := float64(withoutSum) / float64(withoutCount)

	switch {
	case withAvg > withoutAvg && withoutAvg > 0:
		return true, (withAvg/withoutAvg - 1) * 100, true
	case withoutAvg > withAvg && withAvg > 0:
		return false, (withoutAvg/withAvg - 1) * 100, true
	}
	return false, 0, false
}

// Snippet shortens content to its first 30 characters plus an ellipsis. Any
// markup in the content is stripped and remaining special characters are
// entity-encoded, so the result is safe inside an insight's HTML.
func Snippet(content string) string {
	r := []rune(content)
	if len(r) > snippetLength {
		r = r[:snippetLength]
	}
	return snippetPolicy.Sanitize(string(r)) + "..."
}
