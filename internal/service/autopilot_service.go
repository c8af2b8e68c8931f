package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

const (
	MaxKeywords = 5
	// AnalysisThreshold is how many published posts theme analysis needs.
	AnalysisThreshold = 5
)

type AutopilotRequest struct {
	Frequency    int                  `json:"frequency"`
	CustomTopics string               `json:"customTopics"`
	Tone         string               `json:"tone"`
	UseKnowledge *bool                `json:"useKnowledge"`
	Advanced     *ai.AdvancedSettings `json:"advanced"`
}

type AutopilotResult struct {
	Suggestions []models.Suggestion `json:"suggestions"`
	Credits     int                 `json:"credits"`
	Progress    models.Progress     `json:"progress"`
}

type AutopilotService interface {
	Keywords(ctx context.Context) ([]string, error)
	AddKeyword(ctx context.Context, keyword string) ([]string, error)
	RemoveKeyword(ctx context.Context, keyword string) ([]string, error)
	ClearKeywords(ctx context.Context) error
	// AnalyzeThemes asks the model for the recurring themes of the published
	// posts and merges them into the keyword list. It costs no credits.
	AnalyzeThemes(ctx context.Context) ([]string, error)
	Generate(ctx context.Context, req AutopilotRequest) (*AutopilotResult, error)
	Suggestions(ctx context.Context) ([]models.Suggestion, error)
	// Approve turns a pending suggestion into a draft post.
	Approve(ctx context.Context, id string) (*models.Post, error)
	Reject(ctx context.Context, id string) (*models.Suggestion, error)
}

type autopilotService struct {
	ai       ai.Client
	accounts AccountService
	posts    PostService
	postRepo repository.PostRepository
	ar       repository.AutopilotRepository
	sources  promptSources
	now      Clock
}

func NewAutopilotService(
	client ai.Client,
	accounts AccountService,
	posts PostService,
	personalization PersonalizationService,
	store *repository.Store,
	clock Clock) AutopilotService {
	return &autopilotService{
		ai:       client,
		accounts: accounts,
		posts:    posts,
		postRepo: store.Posts,
		ar:       store.Autopilot,
		sources: promptSources{
			accounts:        store.Account,
			knowledge:       store.Knowledge,
			inspiration:     store.Inspiration,
			personalization: personalization,
		},
		now: orNow(clock),
	}
}

// ValidFrequency reports whether n is one of the offered batch sizes.
func ValidFrequency(n int) bool {
	return n == 1 || n == 3 || n == 5
}

// MergeThemes appends the themes not already present to keywords, keeping at
// most MaxKeywords entries.
func MergeThemes(keywords, themes []string) []string {
	merged := make([]string, 0, MaxKeywords)
	seen := make(map[string]bool, len(keywords)+len(themes))
	for _, list := range [][]string{keywords, themes} {
		for _, k := range list {
			k = strings.TrimSpace(k)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			if len(merged) < MaxKeywords {
				merged = append(merged, k)
			}
		}
	}
	return merged
}

func (s *autopilotService) Keywords(ctx context.Context) ([]string, error) {
	keywords, err := s.ar.Keywords(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return keywords, nil
}

func (s *autopilotService) saveKeywords(ctx context.Context, keywords []string) ([]string, error) {
	if err := s.ar.SaveKeywords(ctx, keywords); err != nil {
		return nil, models.NewInternalError(err)
	}
	return keywords, nil
}

func (s *autopilotService) AddKeyword(ctx context.Context, keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, models.NewValidationError("keyword is required")
	}

	keywords, err := s.Keywords(ctx)
	if err != nil {
		return nil, err
	}
	for _, k := range keywords {
		if k == keyword {
			return keywords, nil
		}
	}
	if len(keywords) >= MaxKeywords {
		return nil, models.NewValidationError(fmt.Sprintf("at most %d keywords are allowed", MaxKeywords))
	}
	return s.saveKeywords(ctx, append(keywords, keyword))
}

func (s *autopilotService) RemoveKeyword(ctx context.Context, keyword string) ([]string, error) {
	keywords, err := s.Keywords(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != keyword {
			kept = append(kept, k)
		}
	}
	return s.saveKeywords(ctx, kept)
}

func (s *autopilotService) ClearKeywords(ctx context.Context) error {
	_, err := s.saveKeywords(ctx, []string{})
	return err
}

func (s *autopilotService) publishedContents(ctx context.Context) ([]string, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := s.now()
	var contents []string
	for _, p := range posts {
		if p.IsPublished(now) {
			contents = append(contents, p.Content)
		}
	}
	return contents, nil
}

func (s *autopilotService) AnalyzeThemes(ctx context.Context) ([]string, error) {
	contents, err := s.publishedContents(ctx)
	if err != nil {
		return nil, err
	}
	if len(contents) < AnalysisThreshold {
		return nil, models.NewValidationError(fmt.Sprintf(
			"theme analysis needs %d published posts, found %d", AnalysisThreshold, len(contents)))
	}
	if s.ai == nil {
		return nil, models.NewUpstreamError("The AI service is not configured", ai.ErrNotConfigured)
	}

	keywords, err := s.Keywords(ctx)
	if err != nil {
		return nil, err
	}

	themes, err := s.ai.AnalyzeThemes(ctx, contents)
	if err != nil {
		slog.Info(err.Error())
		return nil, aiError(err)
	}
	return s.saveKeywords(ctx, MergeThemes(keywords, themes))
}

func (s *autopilotService) Generate(ctx context.Context, req AutopilotRequest) (*AutopilotResult, error) {
	if !ValidFrequency(req.Frequency) {
		return nil, models.NewValidationError("frequency must be 1, 3 or 5")
	}
	adv := advancedOrDefault(req.Advanced)
	if err := adv.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	useKnowledge := req.UseKnowledge == nil || *req.UseKnowledge
	pc, err := s.sources.load(ctx, useKnowledge)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(pc.identity.Occupation) == "" {
		return nil, models.NewValidationError("complete your occupation in personalization settings first")
	}
	if s.ai == nil {
		return nil, models.NewUpstreamError("The AI service is not configured", ai.ErrNotConfigured)
	}

	keywords, err := s.Keywords(ctx)
	if err != nil {
		return nil, err
	}

	credits, err := s.accounts.UseCredits(ctx, OpAutopilot, req.Frequency)
	if err != nil {
		return nil, err
	}

	tone := req.Tone
	if tone == "" {
		tone = DefaultTone
	}

	contents, err := s.ai.GenerateSuggestions(ctx, ai.AutopilotRequest{
		Frequency:     req.Frequency,
		Themes:        keywords,
		CustomTopics:  req.CustomTopics,
		Tone:          tone,
		Advanced:      adv,
		Identity:      pc.identity,
		Inspiration:   pc.inspiration,
		BestPractices: pc.practices,
		KnowledgeBase: pc.knowledgeBase,
		Language:      pc.lang,
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, aiError(err)
	}

	now := s.now()
	suggestions := make([]models.Suggestion, 0, len(contents))
	for _, content := range contents {
		id, err := utils.NewID("suggestion")
		if err != nil {
			return nil, models.NewInternalError(fmt.Errorf("generate id: %w", err))
		}
		suggestions = append(suggestions, models.Suggestion{
			ID:        id,
			Content:   content,
			Status:    models.SuggestionPending,
			CreatedAt: now,
		})
	}
	if err := s.ar.ReplaceSuggestions(ctx, suggestions); err != nil {
		return nil, models.NewInternalError(err)
	}

	progress, err := s.accounts.AddXP(ctx, XPAutopilotGenerate)
	if err != nil {
		return nil, err
	}
	return &AutopilotResult{Suggestions: suggestions, Credits: credits, Progress: *progress}, nil
}

func (s *autopilotService) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	suggestions, err := s.ar.ListSuggestions(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return suggestions, nil
}

func (s *autopilotService) pending(ctx context.Context, id string) (*models.Suggestion, error) {
	suggestion, err := s.ar.GetSuggestion(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if suggestion == nil {
		return nil, models.NewNotFoundError("suggestion", id)
	}
	if suggestion.Status != models.SuggestionPending {
		return nil, models.NewValidationError(fmt.Sprintf("suggestion is already %s", suggestion.Status))
	}
	return suggestion, nil
}

func (s *autopilotService) Approve(ctx context.Context, id string) (*models.Post, error) {
	suggestion, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, suggestion.Content, nil)
	if err != nil {
		return nil, err
	}

	suggestion.Status = models.SuggestionApproved
	suggestion.PostID = post.ID
	if err := s.ar.UpdateSuggestion(ctx, suggestion); err != nil {
		return nil, storeError("suggestion", id, err)
	}

	if _, err := s.accounts.AddXP(ctx, XPApproveSuggestion); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *autopilotService) Reject(ctx context.Context, id string) (*models.Suggestion, error) {
	suggestion, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	suggestion.Status = models.SuggestionRejected
	if err := s.ar.UpdateSuggestion(ctx, suggestion); err != nil {
		return nil, storeError("suggestion", id, err)
	}
	return suggestion, nil
}
