package repository

import (
	"context"
	"sync"

	"github.com/maheshrc27/kolink/internal/models"
)

type memoryPersonalizationRepository struct {
	mu        sync.RWMutex
	identity  models.Identity
	practices *collection[models.BestPractice]
}

func NewMemoryPersonalizationRepository(identity models.Identity, practices []models.BestPractice) PersonalizationRepository {
	return &memoryPersonalizationRepository{
		identity:  identity,
		practices: newCollection(func(p models.BestPractice) string { return p.ID }, practices...),
	}
}

func (r *memoryPersonalizationRepository) GetIdentity(ctx context.Context) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.identity
	return &i, nil
}

func (r *memoryPersonalizationRepository) UpdateIdentity(ctx context.Context, identity *models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.identity = *identity
	return nil
}

func (r *memoryPersonalizationRepository) ListPractices(ctx context.Context) ([]models.BestPractice, error) {
	return r.practices.all(), nil
}

func (r *memoryPersonalizationRepository) SetPracticeActive(ctx context.Context, id string, active bool) error {
	n := r.practices.modify(
		func(p models.BestPractice) bool { return p.ID == id },
		func(p *models.BestPractice) { p.Active = active },
	)
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *memoryPersonalizationRepository) AddPractice(ctx context.Context, practice *models.BestPractice) error {
	r.practices.append(*practice)
	return nil
}

func (r *memoryPersonalizationRepository) RemovePractice(ctx context.Context, id string) error {
	n := r.practices.removeWhere(func(p models.BestPractice) bool {
		return p.ID == id && p.Type == models.PracticeTypeCustom
	})
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
