package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/kolink/internal/cache"
	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

const snippetLength = 40

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	ClearRead(ctx context.Context) (int64, error)
	// PostWentLive records that a scheduled post reached its publication time.
	// Posts that were deleted, unscheduled or moved to another time are skipped.
	PostWentLive(ctx context.Context, postID string, scheduledAt time.Time) error
}

type notificationService struct {
	nr    repository.NotificationRepository
	pr    repository.PostRepository
	ar    repository.AccountRepository
	stats cache.StatsCache
	now   Clock
}

// NewNotificationService builds the notification feed. statsCache may be nil;
// when set, a post going live drops the cached statistics reports.
func NewNotificationService(
	nr repository.NotificationRepository,
	pr repository.PostRepository,
	ar repository.AccountRepository,
	statsCache cache.StatsCache,
	clock Clock) NotificationService {
	return &notificationService{nr: nr, pr: pr, ar: ar, stats: statsCache, now: orNow(clock)}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.nr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	notifications, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.nr.MarkRead(ctx, id); err != nil {
		return storeError("notification", id, err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if err := s.nr.MarkAllRead(ctx); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *notificationService) ClearRead(ctx context.Context) (int64, error) {
	n, err := s.nr.RemoveRead(ctx)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (s *notificationService) PostWentLive(ctx context.Context, postID string, scheduledAt time.Time) error {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if post == nil || post.Status != models.PostStatusScheduled || post.ScheduledAt == nil ||
		!post.ScheduledAt.Equal(scheduledAt) {
		slog.Info("skipping stale post live task", "post_id", postID)
		return nil
	}

	if s.stats != nil {
		if err := s.stats.Invalidate(ctx); err != nil {
			slog.Info(err.Error())
		}
	}

	loc, err := loadLocale(ctx, s.ar)
	if err != nil {
		return err
	}

	id, err := utils.NewID("notif")
	if err != nil {
		return models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}
	n := &models.Notification{
		ID:        id,
		Type:      models.NotificationSystem,
		Text:      i18n.T(loc.lang, i18n.KeyPostLive, map[string]string{"snippet": shorten(post.Content, snippetLength)}),
		PostID:    post.ID,
		CreatedAt: s.now(),
	}
	if err := s.nr.Create(ctx, n); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// shorten cuts text to at most n runes, marking truncation with an ellipsis.
func shorten(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "…"
}
