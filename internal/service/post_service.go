package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/maheshrc27/kolink/internal/cache"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

// PostScheduler arranges for the post-went-live notification of a scheduled post.
type PostScheduler interface {
	SchedulePostLive(ctx context.Context, postID string, at time.Time) error
}

type PostFilter struct {
	// Status is draft, scheduled, published or empty for all posts.
	Status string
	Search string
}

// PostUpdate carries the fields of a partial edit. Nil fields are left as they
// are. An empty Image removes the image.
type PostUpdate struct {
	Content    *string `json:"content"`
	Image      *string `json:"image"`
	Views      *int64  `json:"views"`
	Likes      *int64  `json:"likes"`
	Comments   *int64  `json:"comments"`
	TaskStatus *string `json:"taskStatus"`
}

type PostService interface {
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, content string, image *string) (*models.Post, error)
	Update(ctx context.Context, id string, update PostUpdate) (*models.Post, error)
	Schedule(ctx context.Context, id string, at time.Time) (*models.Post, error)
	Unschedule(ctx context.Context, id string) (*models.Post, error)
	SetTaskStatus(ctx context.Context, id, status string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	// Calendar groups the posts scheduled in the given month by day of month,
	// in the account timezone.
	Calendar(ctx context.Context, year int, month time.Month) (map[int][]*models.Post, error)
	AttachImage(ctx context.Context, id string, data []byte) (*models.Post, error)
	Preview(ctx context.Context, id string) (string, error)
}

type postService struct {
	pr        repository.PostRepository
	ar        repository.AccountRepository
	accounts  AccountService
	storage   StorageService
	scheduler PostScheduler
	stats     cache.StatsCache
	now       Clock
}

// NewPostService wires the post lifecycle. accounts, storage, scheduler and
// stats are optional and may be nil.
func NewPostService(
	pr repository.PostRepository,
	ar repository.AccountRepository,
	accounts AccountService,
	storage StorageService,
	scheduler PostScheduler,
	stats cache.StatsCache,
	clock Clock) PostService {
	return &postService{
		pr:        pr,
		ar:        ar,
		accounts:  accounts,
		storage:   storage,
		scheduler: scheduler,
		stats:     stats,
		now:       orNow(clock),
	}
}

func (s *postService) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	switch filter.Status {
	case "", "all", models.PostStatusDraft, models.PostStatusScheduled, models.PostStatusPublished:
	default:
		return nil, models.NewValidationError(fmt.Sprintf("unknown status filter %q", filter.Status))
	}

	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := s.now()
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Status != "" && filter.Status != "all" && p.DisplayStatus(now) != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Content), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].ScheduledAt, filtered[j].ScheduledAt
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return filtered, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post", id)
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, content string, image *string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("content cannot be empty")
	}

	id, err := utils.NewID("post")
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}

	now := s.now()
	post := &models.Post{
		ID:         id,
		Content:    content,
		Status:     models.PostStatusDraft,
		TaskStatus: models.TaskStatusTodo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if image != nil && *image != "" {
		img := *image
		post.Image = &img
	}

	if err := s.pr.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	s.invalidate(ctx)
	return post, nil
}

func validateMetric(name string, v *int64) error {
	if v != nil && *v < 0 {
		return models.NewValidationError(fmt.Sprintf("%s cannot be negative", name))
	}
	return nil
}

func (s *postService) Update(ctx context.Context, id string, update PostUpdate) (*models.Post, error) {
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, models.NewValidationError("content cannot be empty")
	}
	if update.TaskStatus != nil && !models.ValidTaskStatus(*update.TaskStatus) {
		return nil, models.NewValidationError(fmt.Sprintf("unknown task status %q", *update.TaskStatus))
	}
	for name, v := range map[string]*int64{"views": update.Views, "likes": update.Likes, "comments": update.Comments} {
		if err := validateMetric(name, v); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, id, func(p *models.Post) {
		if update.Content != nil {
			p.Content = *update.Content
		}
		if update.Image != nil {
			if *update.Image == "" {
				p.Image = nil
			} else {
				img := *update.Image
				p.Image = &img
			}
		}
		if update.Views != nil {
			p.Views = update.Views
		}
		if update.Likes != nil {
			p.Likes = update.Likes
		}
		if update.Comments != nil {
			p.Comments = update.Comments
		}
		if update.TaskStatus != nil {
			p.TaskStatus = *update.TaskStatus
		}
	})
}

func (s *postService) Schedule(ctx context.Context, id string, at time.Time) (*models.Post, error) {
	if at.IsZero() {
		return nil, models.NewValidationError("scheduledAt is required")
	}

	var wasDraft bool
	post, err := s.mutate(ctx, id, func(p *models.Post) {
		wasDraft = p.Status == models.PostStatusDraft
		t := at
		p.Status = models.PostStatusScheduled
		p.ScheduledAt = &t
	})
	if err != nil {
		return nil, err
	}

	// A draft becoming scheduled earns XP; moving the date does not.
	if wasDraft && s.accounts != nil {
		if _, err := s.accounts.AddXP(ctx, XPSchedule); err != nil {
			slog.Info(err.Error())
		}
	}

	if s.scheduler != nil && at.After(s.now()) {
		if err := s.scheduler.SchedulePostLive(ctx, post.ID, at); err != nil {
			slog.Info(err.Error())
		}
	}
	return post, nil
}

func (s *postService) Unschedule(ctx context.Context, id string) (*models.Post, error) {
	return s.mutate(ctx, id, func(p *models.Post) {
		p.Status = models.PostStatusDraft
		p.ScheduledAt = nil
	})
}

func (s *postService) SetTaskStatus(ctx context.Context, id, status string) (*models.Post, error) {
	return s.Update(ctx, id, PostUpdate{TaskStatus: &status})
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.pr.Remove(ctx, id); err != nil {
		return storeError("post", id, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *postService) Calendar(ctx context.Context, year int, month time.Month) (map[int][]*models.Post, error) {
	if month < time.January || month > time.December {
		return nil, models.NewValidationError(fmt.Sprintf("invalid month %d", month))
	}
	if year < 1970 || year > 9999 {
		return nil, models.NewValidationError(fmt.Sprintf("invalid year %d", year))
	}

	loc, err := loadLocale(ctx, s.ar)
	if err != nil {
		return nil, err
	}
	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	days := make(map[int][]*models.Post)
	for _, p := range posts {
		if p.Status != models.PostStatusScheduled || p.ScheduledAt == nil {
			continue
		}
		at := p.ScheduledAt.In(loc.loc)
		if at.Year() != year || at.Month() != month {
			continue
		}
		days[at.Day()] = append(days[at.Day()], p)
	}
	for _, dayPosts := range days {
		sort.SliceStable(dayPosts, func(i, j int) bool {
			return dayPosts[i].ScheduledAt.Before(*dayPosts[j].ScheduledAt)
		})
	}
	return days, nil
}

func (s *postService) AttachImage(ctx context.Context, id string, data []byte) (*models.Post, error) {
	if s.storage == nil {
		return nil, models.NewValidationError("image uploads are not configured")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	url, err := s.storage.UploadImage(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, PostUpdate{Image: &url})
}

func (s *postService) Preview(ctx context.Context, id string) (string, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return utils.RenderMarkdown(post.Content), nil
}

// mutate loads a post, applies fn and stores the result.
func (s *postService) mutate(ctx context.Context, id string, fn func(*models.Post)) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(post)
	post.UpdatedAt = s.now()
	if err := s.pr.Update(ctx, post); err != nil {
		return nil, storeError("post", id, err)
	}
	s.invalidate(ctx)
	return post, nil
}

func (s *postService) invalidate(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Invalidate(ctx); err != nil {
		slog.Info(err.Error())
	}
}
