package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/kolink/internal/service"
)

// CreditRefillJob tops the account up to its plan allowance on every tick.
type CreditRefillJob struct {
	as      service.AccountService
	timeout time.Duration
}

func NewCreditRefillJob(as service.AccountService) *CreditRefillJob {
	return &CreditRefillJob{as: as, timeout: 30 * time.Second}
}

// RefillCredits matches the func() signature cron expects.
func (j *CreditRefillJob) RefillCredits() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.as.RefillCredits(ctx); err != nil {
		slog.Info("Unable to refill credits", "error", err)
		return
	}
	slog.Info("credit refill completed")
}
