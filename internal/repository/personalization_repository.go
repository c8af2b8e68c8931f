package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/models"
)

// PersonalizationRepository stores the author identity and the best practice
// toggles. Base practices are stored without text; callers localize them by key.
type PersonalizationRepository interface {
	GetIdentity(ctx context.Context) (*models.Identity, error)
	UpdateIdentity(ctx context.Context, identity *models.Identity) error
	ListPractices(ctx context.Context) ([]models.BestPractice, error)
	SetPracticeActive(ctx context.Context, id string, active bool) error
	AddPractice(ctx context.Context, practice *models.BestPractice) error
	// RemovePractice deletes a custom practice. Base practices cannot be removed.
	RemovePractice(ctx context.Context, id string) error
}

type personalizationRepository struct {
	db *sql.DB
}

func NewPersonalizationRepository(db *sql.DB) PersonalizationRepository {
	return &personalizationRepository{db: db}
}

func (r *personalizationRepository) GetIdentity(ctx context.Context) (*models.Identity, error) {
	query := `SELECT name, occupation, bio, custom_instructions FROM identity WHERE id = $1`

	var i models.Identity
	err := r.db.QueryRowContext(ctx, query, accountRowID).Scan(&i.Name, &i.Occupation, &i.Bio, &i.CustomInstructions)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &i, nil
}

func (r *personalizationRepository) UpdateIdentity(ctx context.Context, i *models.Identity) error {
	query := `
		UPDATE identity
		SET name = $1,
			occupation = $2,
			bio = $3,
			custom_instructions = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, i.Name, i.Occupation, i.Bio, i.CustomInstructions, accountRowID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *personalizationRepository) ListPractices(ctx context.Context) ([]models.BestPractice, error) {
	query := `SELECT id, key, text, type, active FROM best_practices ORDER BY position, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var practices []models.BestPractice
	for rows.Next() {
		var p models.BestPractice
		if err := rows.Scan(&p.ID, &p.Key, &p.Text, &p.Type, &p.Active); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		practices = append(practices, p)
	}
	return practices, rows.Err()
}

func (r *personalizationRepository) SetPracticeActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE best_practices SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}

func (r *personalizationRepository) AddPractice(ctx context.Context, p *models.BestPractice) error {
	query := `
		INSERT INTO best_practices (id, key, text, type, active, position)
		VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(position), 0) + 1 FROM best_practices))
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Key, p.Text, p.Type, p.Active)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *personalizationRepository) RemovePractice(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM best_practices WHERE id = $1 AND type = $2`, id, models.PracticeTypeCustom)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}
