package repository

import (
	"context"
	"sync"

	"github.com/maheshrc27/kolink/internal/models"
)

type memoryGenerationHistoryRepository struct {
	items *collection[models.GenerationHistoryItem]
}

func NewMemoryGenerationHistoryRepository(seed []models.GenerationHistoryItem) GenerationHistoryRepository {
	return &memoryGenerationHistoryRepository{
		items: newCollection(func(i models.GenerationHistoryItem) string { return i.ID }, seed...),
	}
}

func (r *memoryGenerationHistoryRepository) List(ctx context.Context) ([]models.GenerationHistoryItem, error) {
	return r.items.all(), nil
}

func (r *memoryGenerationHistoryRepository) Add(ctx context.Context, item *models.GenerationHistoryItem) error {
	r.items.prepend(*item)
	return nil
}

type memoryAutopilotRepository struct {
	mu          sync.RWMutex
	keywords    []string
	suggestions *collection[models.Suggestion]
}

func NewMemoryAutopilotRepository(keywords []string) AutopilotRepository {
	return &memoryAutopilotRepository{
		keywords:    append([]string(nil), keywords...),
		suggestions: newCollection(func(s models.Suggestion) string { return s.ID }),
	}
}

func (r *memoryAutopilotRepository) Keywords(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.keywords...), nil
}

func (r *memoryAutopilotRepository) SaveKeywords(ctx context.Context, keywords []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keywords = append([]string(nil), keywords...)
	return nil
}

func (r *memoryAutopilotRepository) ListSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return r.suggestions.all(), nil
}

func (r *memoryAutopilotRepository) GetSuggestion(ctx context.Context, id string) (*models.Suggestion, error) {
	s, ok := r.suggestions.get(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memoryAutopilotRepository) ReplaceSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	r.suggestions.removeWhere(func(models.Suggestion) bool { return true })
	r.suggestions.append(suggestions...)
	return nil
}

func (r *memoryAutopilotRepository) UpdateSuggestion(ctx context.Context, s *models.Suggestion) error {
	return r.suggestions.replace(*s)
}
