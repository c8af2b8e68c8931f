package repository

import (
	"context"
	"sync"

	"github.com/maheshrc27/kolink/internal/models"
)

type memoryAccountRepository struct {
	mu      sync.RWMutex
	account models.Account
	prefs   models.NotificationPreferences
}

func NewMemoryAccountRepository(account models.Account) AccountRepository {
	return &memoryAccountRepository{
		account: account,
		prefs:   models.DefaultNotificationPreferences(),
	}
}

func (r *memoryAccountRepository) Get(ctx context.Context) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a := r.account
	return &a, nil
}

func (r *memoryAccountRepository) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.account = *account
	return nil
}

func (r *memoryAccountRepository) ConsumeCredits(ctx context.Context, amount int) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.account.Credits < amount {
		return r.account.Credits, false, nil
	}
	r.account.Credits -= amount
	return r.account.Credits, true, nil
}

func (r *memoryAccountRepository) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.prefs
	return &p, nil
}

func (r *memoryAccountRepository) UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs = *prefs
	return nil
}
