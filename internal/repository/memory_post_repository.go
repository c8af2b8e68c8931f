package repository

import (
	"context"

	"github.com/maheshrc27/kolink/internal/models"
)

type memoryPostRepository struct {
	posts *collection[*models.Post]
}

// NewMemoryPostRepository keeps posts in process memory, seeded with the given
// posts in display order.
func NewMemoryPostRepository(seed []*models.Post) PostRepository {
	cloned := make([]*models.Post, 0, len(seed))
	for _, p := range seed {
		cloned = append(cloned, p.Clone())
	}
	return &memoryPostRepository{
		posts: newCollection(func(p *models.Post) string { return p.ID }, cloned...),
	}
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts.get(id)
	if !ok {
		return nil, nil
	}
	return post.Clone(), nil
}

func (r *memoryPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	all := r.posts.all()
	posts := make([]*models.Post, 0, len(all))
	for _, p := range all {
		posts = append(posts, p.Clone())
	}
	return posts, nil
}

func (r *memoryPostRepository) Create(ctx context.Context, post *models.Post) error {
	r.posts.prepend(post.Clone())
	return nil
}

func (r *memoryPostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.posts.replace(post.Clone())
}

func (r *memoryPostRepository) Remove(ctx context.Context, id string) error {
	return r.posts.remove(id)
}
