package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/maheshrc27/kolink/internal/models"
)

type GenerationHistoryRepository interface {
	List(ctx context.Context) ([]models.GenerationHistoryItem, error)
	Add(ctx context.Context, item *models.GenerationHistoryItem) error
}

type generationHistoryRepository struct {
	db *sql.DB
}

func NewGenerationHistoryRepository(db *sql.DB) GenerationHistoryRepository {
	return &generationHistoryRepository{db: db}
}

func (r *generationHistoryRepository) List(ctx context.Context) ([]models.GenerationHistoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, content, date FROM generation_history ORDER BY date DESC`)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []models.GenerationHistoryItem
	for rows.Next() {
		var item models.GenerationHistoryItem
		if err := rows.Scan(&item.ID, &item.Content, &item.Date); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *generationHistoryRepository) Add(ctx context.Context, item *models.GenerationHistoryItem) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO generation_history (id, content, date) VALUES ($1, $2, $3)`,
		item.ID, item.Content, item.Date)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// AutopilotRepository keeps the theme keywords and the current batch of
// suggestions.
type AutopilotRepository interface {
	Keywords(ctx context.Context) ([]string, error)
	SaveKeywords(ctx context.Context, keywords []string) error
	ListSuggestions(ctx context.Context) ([]models.Suggestion, error)
	GetSuggestion(ctx context.Context, id string) (*models.Suggestion, error)
	// ReplaceSuggestions discards the previous batch and stores a new one.
	ReplaceSuggestions(ctx context.Context, suggestions []models.Suggestion) error
	UpdateSuggestion(ctx context.Context, s *models.Suggestion) error
}

type autopilotRepository struct {
	db *sql.DB
}

func NewAutopilotRepository(db *sql.DB) AutopilotRepository {
	return &autopilotRepository{db: db}
}

func (r *autopilotRepository) Keywords(ctx context.Context) ([]string, error) {
	var keywords []string
	err := r.db.QueryRowContext(ctx, `SELECT keywords FROM autopilot_settings WHERE id = $1`, accountRowID).
		Scan(pq.Array(&keywords))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return keywords, nil
}

func (r *autopilotRepository) SaveKeywords(ctx context.Context, keywords []string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE autopilot_settings SET keywords = $1 WHERE id = $2`,
		pq.Array(keywords), accountRowID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *autopilotRepository) ListSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	query := `SELECT id, content, status, COALESCE(post_id, ''), created_at FROM suggestions ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(&s.ID, &s.Content, &s.Status, &s.PostID, &s.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

func (r *autopilotRepository) GetSuggestion(ctx context.Context, id string) (*models.Suggestion, error) {
	query := `SELECT id, content, status, COALESCE(post_id, ''), created_at FROM suggestions WHERE id = $1`

	var s models.Suggestion
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Content, &s.Status, &s.PostID, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &s, nil
}

func (r *autopilotRepository) ReplaceSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM suggestions`); err != nil {
		slog.Info(err.Error())
		return err
	}

	for i, s := range suggestions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO suggestions (id, content, status, position, created_at) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.Content, s.Status, i, s.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}

	return tx.Commit()
}

func (r *autopilotRepository) UpdateSuggestion(ctx context.Context, s *models.Suggestion) error {
	result, err := r.db.ExecContext(ctx, `UPDATE suggestions SET status = $1, post_id = NULLIF($2, '') WHERE id = $3`,
		s.Status, s.PostID, s.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}
