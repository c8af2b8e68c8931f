package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/metrics"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

const (
	XPGenerate          = 10
	XPSaveDraft         = 5
	XPAutopilotGenerate = 20
	XPApproveSuggestion = 5
	XPSchedule          = 15
)

const (
	OpGenerate  = "generate"
	OpEnhance   = "enhance"
	OpAutopilot = "autopilot"
)

// AccountView is the account plus its derived gamification state.
type AccountView struct {
	*models.Account
	Progress models.Progress `json:"progress"`
}

type AccountService interface {
	Get(ctx context.Context) (*AccountView, error)
	// UseCredits consumes amount credits for operation, or fails with
	// INSUFFICIENT_CREDITS leaving the balance untouched.
	UseCredits(ctx context.Context, operation string, amount int) (int, error)
	SelectPlan(ctx context.Context, plan string) (*AccountView, error)
	RefillCredits(ctx context.Context) error
	AddXP(ctx context.Context, amount int) (*models.Progress, error)
	CompleteOnboarding(ctx context.Context) (*AccountView, error)
	UpdateSettings(ctx context.Context, language, timezone string) (*AccountView, error)
	GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) (*models.NotificationPreferences, error)
}

type accountService struct {
	// mu serializes read-modify-write cycles on the single account row.
	mu            sync.Mutex
	ar            repository.AccountRepository
	notifications repository.NotificationRepository
	now           Clock
}

func NewAccountService(ar repository.AccountRepository, nr repository.NotificationRepository, clock Clock) AccountService {
	return &accountService{ar: ar, notifications: nr, now: orNow(clock)}
}

// XPForLevel is the XP needed to advance past level.
func XPForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

func TierForLevel(level int) string {
	switch {
	case level >= 20:
		return models.TierVisionary
	case level >= 10:
		return models.TierInfluencer
	case level >= 5:
		return models.TierStrategist
	}
	return models.TierNovice
}

// ApplyXP adds amount to xp at level, carrying over into as many levels as the
// total covers.
func ApplyXP(level, xp, amount int) (newLevel, newXP, gained int) {
	if level < 1 {
		level = 1
	}
	newLevel, newXP = level, xp+amount
	for need := XPForLevel(newLevel); newXP >= need; need = XPForLevel(newLevel) {
		newXP -= need
		newLevel++
	}
	return newLevel, newXP, newLevel - level
}

func progressOf(a *models.Account) models.Progress {
	return models.Progress{
		Level:          a.Level,
		XP:             a.XP,
		XPForNextLevel: XPForLevel(a.Level),
		Tier:           TierForLevel(a.Level),
	}
}

func (s *accountService) view(a *models.Account) *AccountView {
	return &AccountView{Account: a, Progress: progressOf(a)}
}

func (s *accountService) load(ctx context.Context) (*models.Account, error) {
	a, err := s.ar.Get(ctx)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("load account: %w", err))
	}
	return a, nil
}

func (s *accountService) save(ctx context.Context, a *models.Account) error {
	a.UpdatedAt = s.now()
	if err := s.ar.Update(ctx, a); err != nil {
		return models.NewInternalError(fmt.Errorf("save account: %w", err))
	}
	return nil
}

func (s *accountService) Get(ctx context.Context) (*AccountView, error) {
	a, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(a), nil
}

func (s *accountService) UseCredits(ctx context.Context, operation string, amount int) (int, error) {
	if amount <= 0 {
		return 0, models.NewValidationError("credit amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, ok, err := s.ar.ConsumeCredits(ctx, amount)
	if err != nil {
		return 0, models.NewInternalError(fmt.Errorf("consume credits: %w", err))
	}
	if !ok {
		metrics.CreditsRejected.WithLabelValues(operation).Inc()
		available := 0
		if a, err := s.ar.Get(ctx); err == nil {
			available = a.Credits
		}
		return available, models.NewInsufficientCreditsError(amount, available)
	}

	metrics.CreditsConsumed.WithLabelValues(operation).Add(float64(amount))
	slog.Info("credits consumed", "operation", operation, "amount", amount, "remaining", remaining)
	return remaining, nil
}

func (s *accountService) SelectPlan(ctx context.Context, plan string) (*AccountView, error) {
	if !models.ValidPlan(plan) {
		return nil, models.NewValidationError(fmt.Sprintf("unknown plan %q", plan))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	a.Plan = plan
	a.Credits = models.PlanCredits[plan]
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	return s.view(a), nil
}

func (s *accountService) RefillCredits(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(ctx)
	if err != nil {
		return err
	}
	allowance, ok := models.PlanCredits[a.Plan]
	if !ok || a.Credits >= allowance {
		return nil
	}

	a.Credits = allowance
	if err := s.save(ctx, a); err != nil {
		return err
	}

	s.notify(ctx, i18n.T(a.Language, i18n.KeyCreditsRefilled, map[string]string{
		"credits": strconv.Itoa(allowance),
	}))
	return nil
}

func (s *accountService) AddXP(ctx context.Context, amount int) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	level, xp, gained := ApplyXP(a.Level, a.XP, amount)
	a.Level, a.XP = level, xp
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}

	if gained > 0 {
		s.notify(ctx, i18n.T(a.Language, i18n.KeyLevelUp, map[string]string{"level": strconv.Itoa(level)}))
	}

	p := progressOf(a)
	p.LevelsGained = gained
	return &p, nil
}

func (s *accountService) CompleteOnboarding(ctx context.Context) (*AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	a.OnboardingCompleted = true
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	return s.view(a), nil
}

func (s *accountService) UpdateSettings(ctx context.Context, language, timezone string) (*AccountView, error) {
	if language != "" && !models.ValidLanguage(language) {
		return nil, models.NewValidationError(fmt.Sprintf("unsupported language %q", language))
	}
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, models.NewValidationError(fmt.Sprintf("unknown timezone %q", timezone))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if language != "" {
		a.Language = language
	}
	if timezone != "" {
		a.Timezone = timezone
	}
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	return s.view(a), nil
}

func (s *accountService) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	prefs, err := s.ar.GetNotificationPreferences(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return prefs, nil
}

func (s *accountService) UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) (*models.NotificationPreferences, error) {
	if err := s.ar.UpdateNotificationPreferences(ctx, prefs); err != nil {
		return nil, models.NewInternalError(err)
	}
	return prefs, nil
}

// notify records a system notification. Failures are logged only.
func (s *accountService) notify(ctx context.Context, text string) {
	if s.notifications == nil {
		return
	}
	id, err := utils.NewID("notif")
	if err != nil {
		slog.Info(err.Error())
		return
	}
	n := &models.Notification{ID: id, Type: models.NotificationSystem, Text: text, CreatedAt: s.now()}
	if err := s.notifications.Create(ctx, n); err != nil {
		slog.Info(err.Error())
	}
}
