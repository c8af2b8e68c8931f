package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/models"
)

// AccountRepository stores the single workspace account. The row always exists;
// migrations and the memory constructor create it.
type AccountRepository interface {
	Get(ctx context.Context) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	// ConsumeCredits deducts amount only when the balance covers it. ok is false
	// and nothing changes otherwise.
	ConsumeCredits(ctx context.Context, amount int) (remaining int, ok bool, err error)
	GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) error
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

const accountRowID = 1

func (r *accountRepository) Get(ctx context.Context) (*models.Account, error) {
	query := `
		SELECT plan, credits, xp, level, onboarding_completed, language, timezone, updated_at
		FROM account WHERE id = $1
	`

	var a models.Account
	err := r.db.QueryRowContext(ctx, query, accountRowID).Scan(
		&a.Plan, &a.Credits, &a.XP, &a.Level, &a.OnboardingCompleted, &a.Language, &a.Timezone, &a.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &a, nil
}

func (r *accountRepository) Update(ctx context.Context, a *models.Account) error {
	query := `
		UPDATE account
		SET plan = $1,
			credits = $2,
			xp = $3,
			level = $4,
			onboarding_completed = $5,
			language = $6,
			timezone = $7,
			updated_at = $8
		WHERE id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		a.Plan, a.Credits, a.XP, a.Level, a.OnboardingCompleted, a.Language, a.Timezone, a.UpdatedAt, accountRowID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *accountRepository) ConsumeCredits(ctx context.Context, amount int) (int, bool, error) {
	query := `
		UPDATE account
		SET credits = credits - $1
		WHERE id = $2 AND credits >= $1
		RETURNING credits
	`

	var remaining int
	err := r.db.QueryRowContext(ctx, query, amount, accountRowID).Scan(&remaining)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		slog.Info(err.Error())
		return 0, false, err
	}

	return remaining, true, nil
}

func (r *accountRepository) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	query := `
		SELECT notify_digest, notify_news, notify_confirm, notify_likes, notify_comments, notify_milestones
		FROM account WHERE id = $1
	`

	var p models.NotificationPreferences
	err := r.db.QueryRowContext(ctx, query, accountRowID).Scan(
		&p.Digest, &p.News, &p.Confirm, &p.Likes, &p.Comments, &p.Milestones)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &p, nil
}

func (r *accountRepository) UpdateNotificationPreferences(ctx context.Context, p *models.NotificationPreferences) error {
	query := `
		UPDATE account
		SET notify_digest = $1,
			notify_news = $2,
			notify_confirm = $3,
			notify_likes = $4,
			notify_comments = $5,
			notify_milestones = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, p.Digest, p.News, p.Confirm, p.Likes, p.Comments, p.Milestones, accountRowID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}
