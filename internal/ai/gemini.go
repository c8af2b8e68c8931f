package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/kolink/internal/metrics"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

const (
	opGeneratePost = "generate_post"
	opSuggestions  = "autopilot_suggestions"
	opThemes       = "analyze_themes"
	opEnhance      = "enhance_prompt"
)

// generateFunc performs one GenerateContent round trip for a model name such
// as "gemini-2.5-flash".
type generateFunc func(ctx context.Context, model string, req *generativelanguage.GenerateContentRequest) (*generativelanguage.GenerateContentResponse, error)

type GeminiConfig struct {
	APIKey    string
	TextModel string
	FastModel string
	Timeout   time.Duration
}

type geminiClient struct {
	cfg      GeminiConfig
	generate generateFunc
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("create generative language service: %w", err)
	}

	return newGeminiClient(cfg, func(ctx context.Context, model string, req *generativelanguage.GenerateContentRequest) (*generativelanguage.GenerateContentResponse, error) {
		return svc.Models.GenerateContent("models/"+model, req).Context(ctx).Do()
	}), nil
}

func newGeminiClient(cfg GeminiConfig, generate generateFunc) *geminiClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &geminiClient{cfg: cfg, generate: generate}
}

func (c *geminiClient) call(ctx context.Context, op, model string, prompt Prompt, gen *generativelanguage.GenerationConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{Role: "user", Parts: []*generativelanguage.Part{{Text: prompt.User}}},
		},
		SystemInstruction: &generativelanguage.Content{
			Parts: []*generativelanguage.Part{{Text: prompt.System}},
		},
		GenerationConfig: gen,
	}

	started := time.Now()
	resp, err := c.generate(ctx, model, req)
	if err == nil {
		var text string
		text, err = responseText(resp)
		if err == nil {
			metrics.ObserveAI(op, started, nil)
			return text, nil
		}
	}

	metrics.ObserveAI(op, started, err)
	slog.Error("AI request failed", "operation", op, "model", model, "error", err)
	return "", err
}

func responseText(resp *generativelanguage.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		break
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

func (c *geminiClient) GeneratePost(ctx context.Context, req PostRequest) (string, error) {
	adv := req.Advanced.WithDefaults()
	gen := &generativelanguage.GenerationConfig{
		Temperature:     adv.Creativity,
		TopP:            1,
		TopK:            1,
		ForceSendFields: []string{"Temperature"},
	}

	text, err := c.call(ctx, opGeneratePost, c.cfg.TextModel, BuildPostPrompt(req), gen)
	if err != nil {
		return "", fmt.Errorf("generate post: %w", err)
	}
	return text, nil
}

func (c *geminiClient) GenerateSuggestions(ctx context.Context, req AutopilotRequest) ([]string, error) {
	adv := req.Advanced.WithDefaults()
	gen := &generativelanguage.GenerationConfig{
		Temperature:      adv.Creativity,
		ResponseMimeType: "application/json",
		ResponseSchema:   suggestionsSchema,
		ForceSendFields:  []string{"Temperature"},
	}

	text, err := c.call(ctx, opSuggestions, c.cfg.FastModel, BuildAutopilotPrompt(req), gen)
	if err != nil {
		return nil, fmt.Errorf("generate autopilot suggestions: %w", err)
	}
	suggestions, err := ParseSuggestions(text)
	if err != nil {
		return nil, fmt.Errorf("generate autopilot suggestions: %w", err)
	}
	return suggestions, nil
}

func (c *geminiClient) AnalyzeThemes(ctx context.Context, posts []string) ([]string, error) {
	gen := &generativelanguage.GenerationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   themesSchema,
	}

	text, err := c.call(ctx, opThemes, c.cfg.FastModel, BuildThemesPrompt(posts), gen)
	if err != nil {
		return nil, fmt.Errorf("analyze themes: %w", err)
	}
	themes, err := ParseThemes(text)
	if err != nil {
		return nil, fmt.Errorf("analyze themes: %w", err)
	}
	return themes, nil
}

func (c *geminiClient) EnhancePrompt(ctx context.Context, raw string) (string, error) {
	gen := &generativelanguage.GenerationConfig{Temperature: 0.3}

	text, err := c.call(ctx, opEnhance, c.cfg.FastModel, BuildEnhancePrompt(raw), gen)
	if err != nil {
		return "", fmt.Errorf("enhance prompt: %w", err)
	}
	cleaned := CleanEnhancedPrompt(text)
	if cleaned == "" {
		return "", ErrEmptyResponse
	}
	return cleaned, nil
}

var themesSchema = &generativelanguage.Schema{
	Type: "OBJECT",
	Properties: map[string]generativelanguage.Schema{
		"themes": {
			Type:        "ARRAY",
			Description: "Una lista de 3 a 5 temas clave identificados en los posts.",
			Items:       &generativelanguage.Schema{Type: "STRING"},
		},
	},
	Required: []string{"themes"},
}

var suggestionsSchema = &generativelanguage.Schema{
	Type: "OBJECT",
	Properties: map[string]generativelanguage.Schema{
		"suggestions": {
			Type: "ARRAY",
			Items: &generativelanguage.Schema{
				Type: "OBJECT",
				Properties: map[string]generativelanguage.Schema{
					"content": {
						Type:        "STRING",
						Description: "El texto completo del post sugerido para LinkedIn.",
					},
				},
				Required: []string{"content"},
			},
		},
	},
	Required: []string{"suggestions"},
}

// ParseThemes decodes {"themes": [...]}. A missing or non-array field is an error.
func ParseThemes(text string) ([]string, error) {
	var payload struct {
		Themes *[]string `json:"themes"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Themes == nil {
		return nil, fmt.Errorf("%w: missing themes", ErrMalformedResponse)
	}

	themes := make([]string, 0, len(*payload.Themes))
	for _, t := range *payload.Themes {
		if t = strings.TrimSpace(t); t != "" {
			themes = append(themes, t)
		}
	}
	return themes, nil
}

// ParseSuggestions decodes {"suggestions": [{"content": ...}]} into the contents.
func ParseSuggestions(text string) ([]string, error) {
	var payload struct {
		Suggestions *[]struct {
			Content string `json:"content"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing suggestions", ErrMalformedResponse)
	}

	contents := make([]string, 0, len(*payload.Suggestions))
	for _, s := range *payload.Suggestions {
		if strings.TrimSpace(s.Content) != "" {
			contents = append(contents, s.Content)
		}
	}
	return contents, nil
}
