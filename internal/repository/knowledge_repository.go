package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/models"
)

type KnowledgeRepository interface {
	List(ctx context.Context) ([]models.KnowledgeItem, error)
	GetByID(ctx context.Context, id string) (*models.KnowledgeItem, error)
	Create(ctx context.Context, item *models.KnowledgeItem) error
	Update(ctx context.Context, item *models.KnowledgeItem) error
	Remove(ctx context.Context, id string) error
}

type knowledgeRepository struct {
	db *sql.DB
}

func NewKnowledgeRepository(db *sql.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, content FROM knowledge_items ORDER BY created_at DESC`)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []models.KnowledgeItem
	for rows.Next() {
		var item models.KnowledgeItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Content); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *knowledgeRepository) GetByID(ctx context.Context, id string) (*models.KnowledgeItem, error) {
	var item models.KnowledgeItem
	err := r.db.QueryRowContext(ctx, `SELECT id, title, content FROM knowledge_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Title, &item.Content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &item, nil
}

func (r *knowledgeRepository) Create(ctx context.Context, item *models.KnowledgeItem) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO knowledge_items (id, title, content) VALUES ($1, $2, $3)`,
		item.ID, item.Title, item.Content)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *knowledgeRepository) Update(ctx context.Context, item *models.KnowledgeItem) error {
	result, err := r.db.ExecContext(ctx, `UPDATE knowledge_items SET title = $1, content = $2 WHERE id = $3`,
		item.Title, item.Content, item.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}

func (r *knowledgeRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM knowledge_items WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}

type InspirationRepository interface {
	List(ctx context.Context) ([]models.InspirationPost, error)
	Create(ctx context.Context, post *models.InspirationPost) error
	Update(ctx context.Context, post *models.InspirationPost) error
	Remove(ctx context.Context, id string) error
}

type inspirationRepository struct {
	db *sql.DB
}

func NewInspirationRepository(db *sql.DB) InspirationRepository {
	return &inspirationRepository{db: db}
}

func (r *inspirationRepository) List(ctx context.Context) ([]models.InspirationPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, content FROM inspiration_posts ORDER BY created_at DESC`)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []models.InspirationPost
	for rows.Next() {
		var p models.InspirationPost
		if err := rows.Scan(&p.ID, &p.Content); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *inspirationRepository) Create(ctx context.Context, p *models.InspirationPost) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO inspiration_posts (id, content) VALUES ($1, $2)`, p.ID, p.Content)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *inspirationRepository) Update(ctx context.Context, p *models.InspirationPost) error {
	result, err := r.db.ExecContext(ctx, `UPDATE inspiration_posts SET content = $1 WHERE id = $2`, p.Content, p.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}

func (r *inspirationRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inspiration_posts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}
