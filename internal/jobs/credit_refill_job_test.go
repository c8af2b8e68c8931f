package job

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/robfig/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefillCredits(t *testing.T) {
	now := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore(models.Account{Plan: models.PlanBasic, Credits: 4, Level: 1, Language: "es", Timezone: "UTC"}, false, now)
	accounts := service.NewAccountService(store.Account, store.Notifications, func() time.Time { return now })

	NewCreditRefillJob(accounts).RefillCredits()

	a, err := store.Account.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, a.Credits)
}

func TestRefillSpecIsAccepted(t *testing.T) {
	c := cron.New()
	job := NewCreditRefillJob(nil)
	assert.NoError(t, c.AddFunc("@monthly", job.RefillCredits))
	assert.NoError(t, c.AddFunc("0 0 3 * * *", job.RefillCredits))
	assert.Error(t, c.AddFunc("every month", job.RefillCredits))
}
