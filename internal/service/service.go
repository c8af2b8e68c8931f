package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// locale is the language and timezone the account renders text and days in.
type locale struct {
	lang string
	loc  *time.Location
}

func loadLocale(ctx context.Context, accounts repository.AccountRepository) (locale, error) {
	account, err := accounts.Get(ctx)
	if err != nil {
		return locale{}, models.NewInternalError(fmt.Errorf("load account: %w", err))
	}

	loc, err := time.LoadLocation(account.Timezone)
	if err != nil {
		slog.Info("falling back to UTC", "timezone", account.Timezone, "error", err)
		loc = time.UTC
	}
	return locale{lang: i18n.Resolve(account.Language), loc: loc}, nil
}

// storeError maps repository failures onto AppErrors.
func storeError(resource, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}
