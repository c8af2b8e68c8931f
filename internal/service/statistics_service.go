package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/kolink/internal/analytics"
	"github.com/maheshrc27/kolink/internal/cache"
	"github.com/maheshrc27/kolink/internal/metrics"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
)

type StatisticsService interface {
	// Report builds the statistics page for a range token (7d, 30d or 90d).
	// Unknown tokens fall back to 30d.
	Report(ctx context.Context, rangeToken string) (*analytics.Report, error)
	Overview(ctx context.Context) (*analytics.Summary, error)
}

type statisticsService struct {
	pr    repository.PostRepository
	ar    repository.AccountRepository
	cache cache.StatsCache
	now   Clock
}

// NewStatisticsService computes reports from the post store. statsCache may be
// nil, in which case every request is computed.
func NewStatisticsService(pr repository.PostRepository, ar repository.AccountRepository, statsCache cache.StatsCache, clock Clock) StatisticsService {
	return &statisticsService{pr: pr, ar: ar, cache: statsCache, now: orNow(clock)}
}

func (s *statisticsService) Report(ctx context.Context, rangeToken string) (*analytics.Report, error) {
	loc, err := loadLocale(ctx, s.ar)
	if err != nil {
		return nil, err
	}

	rangeToken = analytics.NormalizeRange(rangeToken)
	field := cache.ReportField(rangeToken, loc.lang, loc.loc.String())

	now := s.now()
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, field, now)
		if err != nil {
			slog.Info(err.Error())
		} else if ok {
			return cached, nil
		}
	}

	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	report := analytics.BuildReport(posts, rangeToken, now, loc.loc, loc.lang)
	metrics.InsightsGenerated.Add(float64(len(report.Insights)))

	if s.cache != nil {
		validUntil := analytics.ValidUntil(posts, rangeToken, now, loc.loc)
		if err := s.cache.Set(ctx, field, &report, validUntil); err != nil {
			slog.Info(err.Error())
		}
	}
	return &report, nil
}

func (s *statisticsService) Overview(ctx context.Context) (*analytics.Summary, error) {
	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	summary := analytics.Overview(posts, s.now())
	return &summary, nil
}
