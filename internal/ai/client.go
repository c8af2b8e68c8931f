package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheshrc27/kolink/internal/models"
)

// Client is the generative model used by the generator and Autopilot.
// Implementations make exactly one upstream call per method and never retry.
type Client interface {
	GeneratePost(ctx context.Context, req PostRequest) (string, error)
	GenerateSuggestions(ctx context.Context, req AutopilotRequest) ([]string, error)
	AnalyzeThemes(ctx context.Context, posts []string) ([]string, error)
	// EnhancePrompt rewrites a raw prompt. Callers fall back to the raw prompt
	// on error.
	EnhancePrompt(ctx context.Context, raw string) (string, error)
}

var (
	ErrEmptyResponse     = errors.New("model returned no text")
	ErrMalformedResponse = errors.New("model response does not have the expected format")
	ErrNotConfigured     = errors.New("AI client is not configured")
)

const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"

	EmojiNone     = "none"
	EmojiSubtle   = "subtle"
	EmojiModerate = "moderate"

	CTAQuestion = "question"
	CTADebate   = "debate"
	CTALink     = "link"
	CTANone     = "none"

	HashtagsBroad = "broad"
	HashtagsNiche = "niche"
	HashtagsNone  = "none"
)

type AdvancedSettings struct {
	Length     string  `json:"length"`
	EmojiUsage string  `json:"emojiUsage"`
	Creativity float64 `json:"creativity"`
	CTA        string  `json:"cta"`
	Hashtags   string  `json:"hashtags"`
	Audience   string  `json:"audience"`
}

func DefaultAdvancedSettings() AdvancedSettings {
	return AdvancedSettings{
		Length:     LengthMedium,
		EmojiUsage: EmojiSubtle,
		Creativity: 0.7,
		CTA:        CTAQuestion,
		Hashtags:   HashtagsBroad,
	}
}

// WithDefaults fills empty fields from DefaultAdvancedSettings. Creativity is
// kept as given since zero is a valid temperature.
func (a AdvancedSettings) WithDefaults() AdvancedSettings {
	d := DefaultAdvancedSettings()
	if a.Length == "" {
		a.Length = d.Length
	}
	if a.EmojiUsage == "" {
		a.EmojiUsage = d.EmojiUsage
	}
	if a.CTA == "" {
		a.CTA = d.CTA
	}
	if a.Hashtags == "" {
		a.Hashtags = d.Hashtags
	}
	return a
}

func (a AdvancedSettings) Validate() error {
	if _, ok := lengthMap[a.Length]; !ok {
		return fmt.Errorf("unknown length %q", a.Length)
	}
	if _, ok := emojiMap[a.EmojiUsage]; !ok {
		return fmt.Errorf("unknown emoji usage %q", a.EmojiUsage)
	}
	if _, ok := ctaMap[a.CTA]; !ok {
		return fmt.Errorf("unknown call to action %q", a.CTA)
	}
	if _, ok := hashtagsMap[a.Hashtags]; !ok {
		return fmt.Errorf("unknown hashtag strategy %q", a.Hashtags)
	}
	if a.Creativity < 0 || a.Creativity > 1 {
		return fmt.Errorf("creativity must be between 0 and 1, got %v", a.Creativity)
	}
	return nil
}

type PostRequest struct {
	Prompt             string
	Tone               string
	PostType           string
	CustomInstructions string
	Advanced           AdvancedSettings
	KnowledgeBase      string
	Identity           models.Identity
	Inspiration        []models.InspirationPost
	BestPractices      []string
	Language           string
}

type AutopilotRequest struct {
	Frequency     int
	Themes        []string
	CustomTopics  string
	Tone          string
	Advanced      AdvancedSettings
	Identity      models.Identity
	Inspiration   []models.InspirationPost
	BestPractices []string
	KnowledgeBase string
	Language      string
}
