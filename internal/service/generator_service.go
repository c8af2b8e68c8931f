package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

const (
	DefaultTone     = "professional"
	DefaultPostType = "announcement"

	generateCost = 1
	enhanceCost  = 1
)

type GenerateRequest struct {
	Prompt             string               `json:"prompt"`
	Tone               string               `json:"tone"`
	PostType           string               `json:"postType"`
	CustomInstructions string               `json:"customInstructions"`
	UseKnowledge       *bool                `json:"useKnowledge"`
	Advanced           *ai.AdvancedSettings `json:"advanced"`
}

type GenerateResult struct {
	Content  string          `json:"content"`
	Credits  int             `json:"credits"`
	Progress models.Progress `json:"progress"`
}

type EnhanceResult struct {
	Prompt   string `json:"prompt"`
	Enhanced bool   `json:"enhanced"`
	Credits  int    `json:"credits"`
}

type GeneratorService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	// Enhance rewrites a raw prompt for one credit. When the model fails the raw
	// prompt comes back unchanged and the credit stays spent.
	Enhance(ctx context.Context, prompt string) (*EnhanceResult, error)
	SaveDraft(ctx context.Context, content string) (*models.Post, error)
	History(ctx context.Context) ([]models.GenerationHistoryItem, error)
}

// promptSources gathers the personal context every generation prompt carries.
type promptSources struct {
	accounts        repository.AccountRepository
	knowledge       repository.KnowledgeRepository
	inspiration     repository.InspirationRepository
	personalization PersonalizationService
}

type promptContext struct {
	lang          string
	identity      models.Identity
	inspiration   []models.InspirationPost
	practices     []string
	knowledgeBase string
}

func (p promptSources) load(ctx context.Context, withKnowledge bool) (*promptContext, error) {
	loc, err := loadLocale(ctx, p.accounts)
	if err != nil {
		return nil, err
	}
	identity, err := p.personalization.GetIdentity(ctx)
	if err != nil {
		return nil, err
	}
	practices, err := p.personalization.ActivePractices(ctx)
	if err != nil {
		return nil, err
	}
	inspiration, err := p.inspiration.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	pc := &promptContext{
		lang:        loc.lang,
		identity:    *identity,
		inspiration: inspiration,
		practices:   practices,
	}
	if withKnowledge {
		items, err := p.knowledge.List(ctx)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		pc.knowledgeBase = ai.KnowledgeBaseContent(items)
	}
	return pc, nil
}

// advancedOrDefault fills a request's advanced settings. A request without
// them gets the full defaults, including creativity.
func advancedOrDefault(a *ai.AdvancedSettings) ai.AdvancedSettings {
	if a == nil {
		return ai.DefaultAdvancedSettings()
	}
	return a.WithDefaults()
}

// aiError classifies a model failure for the API.
func aiError(err error) error {
	if errors.Is(err, ai.ErrMalformedResponse) {
		return models.NewUpstreamError("The AI service returned an unexpected response", err)
	}
	return models.NewUpstreamError("The AI service is unavailable", err)
}

type generatorService struct {
	ai       ai.Client
	accounts AccountService
	posts    PostService
	history  repository.GenerationHistoryRepository
	sources  promptSources
	now      Clock
}

func NewGeneratorService(
	client ai.Client,
	accounts AccountService,
	posts PostService,
	personalization PersonalizationService,
	store *repository.Store,
	clock Clock) GeneratorService {
	return &generatorService{
		ai:       client,
		accounts: accounts,
		posts:    posts,
		history:  store.History,
		sources: promptSources{
			accounts:        store.Account,
			knowledge:       store.Knowledge,
			inspiration:     store.Inspiration,
			personalization: personalization,
		},
		now: orNow(clock),
	}
}

func (s *generatorService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, models.NewValidationError("prompt is required")
	}
	adv := advancedOrDefault(req.Advanced)
	if err := adv.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if s.ai == nil {
		return nil, models.NewUpstreamError("The AI service is not configured", ai.ErrNotConfigured)
	}

	useKnowledge := req.UseKnowledge == nil || *req.UseKnowledge
	pc, err := s.sources.load(ctx, useKnowledge)
	if err != nil {
		return nil, err
	}

	credits, err := s.accounts.UseCredits(ctx, OpGenerate, generateCost)
	if err != nil {
		return nil, err
	}

	tone, postType := req.Tone, req.PostType
	if tone == "" {
		tone = DefaultTone
	}
	if postType == "" {
		postType = DefaultPostType
	}

	content, err := s.ai.GeneratePost(ctx, ai.PostRequest{
		Prompt:             req.Prompt,
		Tone:               tone,
		PostType:           postType,
		CustomInstructions: req.CustomInstructions,
		Advanced:           adv,
		KnowledgeBase:      pc.knowledgeBase,
		Identity:           pc.identity,
		Inspiration:        pc.inspiration,
		BestPractices:      pc.practices,
		Language:           pc.lang,
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, aiError(err)
	}

	progress, err := s.accounts.AddXP(ctx, XPGenerate)
	if err != nil {
		return nil, err
	}
	if err := s.record(ctx, content); err != nil {
		return nil, err
	}

	return &GenerateResult{Content: content, Credits: credits, Progress: *progress}, nil
}

func (s *generatorService) record(ctx context.Context, content string) error {
	id, err := utils.NewID("hist")
	if err != nil {
		return models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}
	item := &models.GenerationHistoryItem{ID: id, Content: content, Date: s.now()}
	if err := s.history.Add(ctx, item); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *generatorService) Enhance(ctx context.Context, prompt string) (*EnhanceResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, models.NewValidationError("prompt is required")
	}

	credits, err := s.accounts.UseCredits(ctx, OpEnhance, enhanceCost)
	if err != nil {
		return nil, err
	}

	result := &EnhanceResult{Prompt: prompt, Credits: credits}
	if s.ai == nil {
		return result, nil
	}

	enhanced, err := s.ai.EnhancePrompt(ctx, prompt)
	if err != nil {
		slog.Info("prompt enhancement failed, keeping original", "error", err)
		return result, nil
	}
	result.Prompt = enhanced
	result.Enhanced = true
	return result, nil
}

func (s *generatorService) SaveDraft(ctx context.Context, content string) (*models.Post, error) {
	post, err := s.posts.Create(ctx, content, nil)
	if err != nil {
		return nil, err
	}
	if _, err := s.accounts.AddXP(ctx, XPSaveDraft); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *generatorService) History(ctx context.Context) ([]models.GenerationHistoryItem, error) {
	items, err := s.history.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
