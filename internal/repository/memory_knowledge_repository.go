package repository

import (
	"context"

	"github.com/maheshrc27/kolink/internal/models"
)

type memoryKnowledgeRepository struct {
	items *collection[models.KnowledgeItem]
}

func NewMemoryKnowledgeRepository(seed []models.KnowledgeItem) KnowledgeRepository {
	return &memoryKnowledgeRepository{
		items: newCollection(func(i models.KnowledgeItem) string { return i.ID }, seed...),
	}
}

func (r *memoryKnowledgeRepository) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	return r.items.all(), nil
}

func (r *memoryKnowledgeRepository) GetByID(ctx context.Context, id string) (*models.KnowledgeItem, error) {
	item, ok := r.items.get(id)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *memoryKnowledgeRepository) Create(ctx context.Context, item *models.KnowledgeItem) error {
	r.items.prepend(*item)
	return nil
}

func (r *memoryKnowledgeRepository) Update(ctx context.Context, item *models.KnowledgeItem) error {
	return r.items.replace(*item)
}

func (r *memoryKnowledgeRepository) Remove(ctx context.Context, id string) error {
	return r.items.remove(id)
}

type memoryInspirationRepository struct {
	posts *collection[models.InspirationPost]
}

func NewMemoryInspirationRepository(seed []models.InspirationPost) InspirationRepository {
	return &memoryInspirationRepository{
		posts: newCollection(func(p models.InspirationPost) string { return p.ID }, seed...),
	}
}

func (r *memoryInspirationRepository) List(ctx context.Context) ([]models.InspirationPost, error) {
	return r.posts.all(), nil
}

func (r *memoryInspirationRepository) Create(ctx context.Context, p *models.InspirationPost) error {
	r.posts.prepend(*p)
	return nil
}

func (r *memoryInspirationRepository) Update(ctx context.Context, p *models.InspirationPost) error {
	return r.posts.replace(*p)
}

func (r *memoryInspirationRepository) Remove(ctx context.Context, id string) error {
	return r.posts.remove(id)
}
