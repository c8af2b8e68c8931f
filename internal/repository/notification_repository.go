package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/models"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	// RemoveRead deletes every read notification and returns how many went.
	RemoveRead(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	query := `SELECT id, type, read, text, COALESCE(post_id, ''), created_at FROM notifications ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Read, &n.Text, &n.PostID, &n.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, type, read, text, post_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`
	_, err := r.db.ExecContext(ctx, query, n.ID, n.Type, n.Read, n.Text, n.PostID, n.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return expectAffected(result)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE read = FALSE`)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *notificationRepository) RemoveRead(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE read = TRUE`)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return result.RowsAffected()
}

type memoryNotificationRepository struct {
	notifications *collection[models.Notification]
}

func NewMemoryNotificationRepository(seed []models.Notification) NotificationRepository {
	return &memoryNotificationRepository{
		notifications: newCollection(func(n models.Notification) string { return n.ID }, seed...),
	}
}

func (r *memoryNotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	return r.notifications.all(), nil
}

func (r *memoryNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	r.notifications.prepend(*n)
	return nil
}

func (r *memoryNotificationRepository) MarkRead(ctx context.Context, id string) error {
	n := r.notifications.modify(
		func(n models.Notification) bool { return n.ID == id },
		func(n *models.Notification) { n.Read = true },
	)
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *memoryNotificationRepository) MarkAllRead(ctx context.Context) error {
	r.notifications.modify(
		func(n models.Notification) bool { return !n.Read },
		func(n *models.Notification) { n.Read = true },
	)
	return nil
}

func (r *memoryNotificationRepository) RemoveRead(ctx context.Context) (int64, error) {
	return int64(r.notifications.removeWhere(func(n models.Notification) bool { return n.Read })), nil
}
