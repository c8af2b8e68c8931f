package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/kolink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPostRepositoryIsolatesCallers(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryPostRepository(DemoPosts(now))
	ctx := context.Background()

	post, err := repo.GetByID(ctx, "dummy-3")
	require.NoError(t, err)
	*post.Views = 1
	post.Content = "changed"

	again, err := repo.GetByID(ctx, "dummy-3")
	require.NoError(t, err)
	assert.Equal(t, int64(8451), again.ViewCount())
	assert.NotEqual(t, "changed", again.Content)
}

func TestMemoryPostRepositoryCreatePrepends(t *testing.T) {
	repo := NewMemoryPostRepository(DemoPosts(time.Now()))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{ID: "new", Status: models.PostStatusDraft}))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", posts[0].ID)
	assert.Len(t, posts, 8)

	require.NoError(t, repo.Remove(ctx, "new"))
	assert.ErrorIs(t, repo.Remove(ctx, "new"), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Post{ID: "new"}), ErrNotFound)
}

func TestMemoryPersonalizationRepositoryKeepsBasePractices(t *testing.T) {
	repo := NewMemoryPersonalizationRepository(DemoIdentity(), models.BasePractices())
	ctx := context.Background()

	assert.ErrorIs(t, repo.RemovePractice(ctx, "bp-hook"), ErrNotFound)

	require.NoError(t, repo.AddPractice(ctx, &models.BestPractice{ID: "cp-1", Text: "Cita datos", Type: models.PracticeTypeCustom, Active: true}))
	require.NoError(t, repo.SetPracticeActive(ctx, "bp-pain", true))

	practices, err := repo.ListPractices(ctx)
	require.NoError(t, err)
	require.Len(t, practices, 6)
	assert.Equal(t, "cp-1", practices[5].ID)
	assert.True(t, practices[2].Active)

	require.NoError(t, repo.RemovePractice(ctx, "cp-1"))
	assert.ErrorIs(t, repo.SetPracticeActive(ctx, "cp-1", false), ErrNotFound)
}

func TestMemoryNotificationRepositoryReadLifecycle(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryNotificationRepository(DemoNotifications(now))
	ctx := context.Background()

	require.NoError(t, repo.MarkRead(ctx, "notif-1"))
	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), ErrNotFound)

	removed, err := repo.RemoveRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	left, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "notif-2", left[0].ID)

	require.NoError(t, repo.MarkAllRead(ctx))
	left, err = repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, left[0].Read)
}
