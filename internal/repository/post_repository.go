package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, content, status, scheduled_at, image, views, likes, comments, task_status, created_at, updated_at`

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, content, status, scheduled_at, image, views, likes, comments, task_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Content, post.Status, post.ScheduledAt, post.Image,
		post.Views, post.Likes, post.Comments, post.TaskStatus, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET content = $1,
			status = $2,
			scheduled_at = $3,
			image = $4,
			views = $5,
			likes = $6,
			comments = $7,
			task_status = $8,
			updated_at = $9
		WHERE id = $10
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Content, post.Status, post.ScheduledAt, post.Image,
		post.Views, post.Likes, post.Comments, post.TaskStatus, post.UpdatedAt, post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return expectAffected(result)
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return expectAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.Content, &post.Status, &post.ScheduledAt, &post.Image,
		&post.Views, &post.Likes, &post.Comments, &post.TaskStatus, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
