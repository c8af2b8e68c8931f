package analytics

import (
	"sort"

	"github.com/maheshrc27/kolink/internal/models"
)

const TopPostsLimit = 5

type RankedPost struct {
	*models.Post
	EngagementRate float64 `json:"engagementRate"`
}

// TopPosts orders posts by views, highest first, keeping input order on ties,
// and returns at most limit entries annotated with their engagement rate.
func TopPosts(posts []*models.Post, limit int) []RankedPost {
	ranked := make([]RankedPost, 0, len(posts))
	for _, p := range posts {
		ranked = append(ranked, RankedPost{
			Post:           p,
			EngagementRate: EngagementRate(p.Engagement(), p.ViewCount()),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount() > ranked[j].ViewCount()
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
