package analytics

import (
	"testing"
	"time"

	"github.com/maheshrc27/kolink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportSinglePostToday(t *testing.T) {
	posts := []*models.Post{published("a", testNow.Add(-time.Hour), 1000, 50, 10)}

	r := BuildReport(posts, "7d", testNow, time.UTC, "en")

	assert.True(t, r.HasData)
	assert.Equal(t, int64(1000), r.Totals.Impressions)
	assert.Equal(t, int64(60), r.Totals.Engagement)
	assert.InDelta(t, 6.0, r.Totals.EngagementRate, 1e-9)
	assert.Equal(t, Totals{}, r.PreviousTotals)
	assert.Equal(t, 100.0, r.Comparison.Impressions.Change)
	assert.Equal(t, 100.0, r.Comparison.EngagementRate.Change)
	assert.Equal(t, 100.0, r.Comparison.Likes.Change)
	assert.Equal(t, 100.0, r.Comparison.Comments.Change)
	require.Len(t, r.Series, 7)
	assert.Equal(t, int64(1000), r.Series[6].Impressions)
	require.NotNil(t, r.BestPost)
	assert.Equal(t, "a", r.BestPost.ID)
}

func TestBuildReportImageScenario(t *testing.T) {
	posts := []*models.Post{
		withImage(published("img", daysAgo(3), 900, 80, 20)),
		published("plain", daysAgo(4), 800, 40, 10),
	}

	r := BuildReport(posts, "30d", testNow, time.UTC, "en")

	assert.Contains(t, r.Insights, "Posts <strong>with an image</strong> get <strong>100% more</strong> engagement.")
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, "90d", testNow, time.UTC, "es")

	assert.False(t, r.HasData)
	assert.Len(t, r.Series, 90)
	assert.Empty(t, r.TopPosts)
	assert.Nil(t, r.BestPost)
	assert.Len(t, r.Insights, 2)
}

func TestBuildReportIsIdempotent(t *testing.T) {
	posts := []*models.Post{
		published("a", daysAgo(1), 10, 1, 0),
		withImage(published("b", daysAgo(12), 40, 3, 2)),
		published("c", daysAgo(40), 90, 9, 1),
	}

	first := BuildReport(posts, "30d", testNow, time.UTC, "fr")
	second := BuildReport(posts, "30d", testNow, time.UTC, "fr")

	assert.Equal(t, first, second)
}

func TestBuildReportUnknownRangeFallsBack(t *testing.T) {
	r := BuildReport(nil, "365d", testNow, time.UTC, "es")
	assert.Equal(t, Range30d, r.Range)
	assert.Len(t, r.Series, 30)
}

func TestBuildReportIsStableForTemplateLikeContent(t *testing.T) {
	post := published("a", testNow.Add(-time.Hour), 1000, 50, 10)
	post.Content = "see {{impressions}} now"
	posts := []*models.Post{post}

	first := BuildReport(posts, "7d", testNow, time.UTC, "en")
	assert.Contains(t, first.Insights, "Your best post, \"see {{impressions}} now...\", reached <strong>1,000 impressions</strong>.")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, BuildReport(posts, "7d", testNow, time.UTC, "en"))
	}
}

func TestValidUntilStopsAtNextScheduledPost(t *testing.T) {
	upcoming := &models.Post{ID: "u", Status: models.PostStatusScheduled, ScheduledAt: ptrTime(testNow.Add(2 * time.Hour))}
	posts := []*models.Post{published("a", daysAgo(3), 10, 1, 0), upcoming}

	assert.Equal(t, testNow.Add(2*time.Hour), ValidUntil(posts, "7d", testNow, time.UTC))
}

func TestValidUntilStopsWhenPostLeavesWindow(t *testing.T) {
	at := testNow.Add(-7*24*time.Hour + 30*time.Minute)
	posts := []*models.Post{published("a", at, 10, 1, 0)}

	assert.Equal(t, at.Add(7*24*time.Hour), ValidUntil(posts, "7d", testNow, time.UTC))
}

func TestValidUntilDefaultsToNextMidnight(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	got := ValidUntil(nil, "30d", testNow, madrid)
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, madrid), got)

	draft := &models.Post{ID: "d", Status: models.PostStatusDraft}
	assert.Equal(t, got, ValidUntil([]*models.Post{draft}, "30d", testNow, madrid))
}

func ptrTime(t time.Time) *time.Time { return &t }
