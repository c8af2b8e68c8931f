package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/kolink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func newPostService(t *testing.T, demo bool) (PostService, *fakeScheduler, *fakeStatsCache, *fakeStorage) {
	t.Helper()
	store := newTestStore(10, demo)
	scheduler := &fakeScheduler{}
	stats := newFakeStatsCache()
	storage := &fakeStorage{url: "https://cdn.example.com/posts/img.png"}
	return NewPostService(store.Posts, store.Account, nil, storage, scheduler, stats, fixedClock), scheduler, stats, storage
}

func postIDs(posts []*models.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListSortsByScheduleWithDraftsLast(t *testing.T) {
	svc, _, _, _ := newPostService(t, true)

	posts, err := svc.List(context.Background(), PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy-2", "dummy-3", "dummy-4", "dummy-5", "dummy-6", "dummy-7", "dummy-1"}, postIDs(posts))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newPostService(t, true)

	drafts, err := svc.List(ctx, PostFilter{Status: models.PostStatusDraft})
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy-1"}, postIDs(drafts))

	scheduled, err := svc.List(ctx, PostFilter{Status: models.PostStatusScheduled})
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy-2"}, postIDs(scheduled))

	published, err := svc.List(ctx, PostFilter{Status: models.PostStatusPublished})
	require.NoError(t, err)
	assert.Len(t, published, 5)

	found, err := svc.List(ctx, PostFilter{Search: "REMOTO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy-5"}, postIDs(found))

	_, err = svc.List(ctx, PostFilter{Status: "archived"})
	requireCode(t, err, models.CodeValidation)
}

func TestCreateDraft(t *testing.T) {
	ctx := context.Background()
	svc, _, stats, _ := newPostService(t, false)

	img := "https://cdn.example.com/a.png"
	post, err := svc.Create(ctx, "Hola LinkedIn", &img)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, models.TaskStatusTodo, post.TaskStatus)
	assert.Nil(t, post.ScheduledAt)
	require.NotNil(t, post.Image)
	assert.Equal(t, img, *post.Image)
	assert.Equal(t, testNow, post.CreatedAt)
	assert.Equal(t, 1, stats.invalidations)

	_, err = svc.Create(ctx, " ", nil)
	requireCode(t, err, models.CodeValidation)
}

func TestScheduleAndUnschedule(t *testing.T) {
	ctx := context.Background()
	svc, scheduler, _, _ := newPostService(t, true)

	at := testNow.Add(48 * time.Hour)
	post, err := svc.Schedule(ctx, "dummy-1", at)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	require.NotNil(t, post.ScheduledAt)
	assert.True(t, post.ScheduledAt.Equal(at))
	assert.Equal(t, []string{"dummy-1"}, scheduler.postIDs)

	post, err = svc.Unschedule(ctx, "dummy-1")
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Nil(t, post.ScheduledAt)

	// A past time publishes immediately and needs no live task.
	_, err = svc.Schedule(ctx, "dummy-1", testNow.Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, scheduler.postIDs, 1)

	_, err = svc.Schedule(ctx, "dummy-1", time.Time{})
	requireCode(t, err, models.CodeValidation)

	_, err = svc.Schedule(ctx, "missing", at)
	requireCode(t, err, models.CodeNotFound)
}

func TestSchedulingADraftEarnsXPOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(10, true)
	accounts := NewAccountService(store.Account, store.Notifications, fixedClock)
	svc := NewPostService(store.Posts, store.Account, accounts, nil, nil, nil, fixedClock)

	_, err := svc.Schedule(ctx, "dummy-1", testNow.Add(48*time.Hour))
	require.NoError(t, err)
	view, err := accounts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPSchedule, view.XP)

	// Moving an already scheduled post.
	_, err = svc.Schedule(ctx, "dummy-1", testNow.Add(72*time.Hour))
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, "dummy-2", testNow.Add(72*time.Hour))
	require.NoError(t, err)
	view, err = accounts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPSchedule, view.XP)

	// Back to draft and scheduled again.
	_, err = svc.Unschedule(ctx, "dummy-1")
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, "dummy-1", testNow.Add(96*time.Hour))
	require.NoError(t, err)
	view, err = accounts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2*XPSchedule, view.XP)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, _, stats, _ := newPostService(t, true)

	content := "Nuevo texto"
	views := int64(42)
	empty := ""
	post, err := svc.Update(ctx, "dummy-2", PostUpdate{Content: &content, Views: &views, Image: &empty})
	require.NoError(t, err)
	assert.Equal(t, content, post.Content)
	assert.Equal(t, int64(42), post.ViewCount())
	assert.Nil(t, post.Image)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	assert.Equal(t, 1, stats.invalidations)

	negative := int64(-1)
	_, err = svc.Update(ctx, "dummy-2", PostUpdate{Likes: &negative})
	requireCode(t, err, models.CodeValidation)

	_, err = svc.SetTaskStatus(ctx, "dummy-2", "blocked")
	requireCode(t, err, models.CodeValidation)

	post, err = svc.SetTaskStatus(ctx, "dummy-2", models.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, post.TaskStatus)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newPostService(t, true)

	require.NoError(t, svc.Delete(ctx, "dummy-1"))
	_, err := svc.Get(ctx, "dummy-1")
	requireCode(t, err, models.CodeNotFound)

	requireCode(t, svc.Delete(ctx, "dummy-1"), models.CodeNotFound)
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newPostService(t, true)

	days, err := svc.Calendar(ctx, 2024, time.October)
	require.NoError(t, err)

	// testNow is 16 October; dummy-7 (40 days back) falls in September.
	assert.Equal(t, []string{"dummy-2"}, postIDs(days[17]))
	assert.Equal(t, []string{"dummy-3"}, postIDs(days[14]))
	assert.Equal(t, []string{"dummy-4"}, postIDs(days[11]))
	assert.Equal(t, []string{"dummy-5"}, postIDs(days[6]))
	assert.Len(t, days, 4)

	september, err := svc.Calendar(ctx, 2024, time.September)
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy-6"}, postIDs(september[21]))
	assert.Equal(t, []string{"dummy-7"}, postIDs(september[6]))

	_, err = svc.Calendar(ctx, 2024, 13)
	requireCode(t, err, models.CodeValidation)
}

func TestAttachImage(t *testing.T) {
	ctx := context.Background()
	svc, _, _, storage := newPostService(t, true)

	post, err := svc.AttachImage(ctx, "dummy-1", pngHeader)
	require.NoError(t, err)
	require.NotNil(t, post.Image)
	assert.Equal(t, storage.url, *post.Image)

	_, err = svc.AttachImage(ctx, "dummy-1", []byte("plain text is not an image"))
	requireCode(t, err, models.CodeValidation)

	_, err = svc.AttachImage(ctx, "missing", pngHeader)
	requireCode(t, err, models.CodeNotFound)
}

func TestAttachImageWithoutStorage(t *testing.T) {
	store := newTestStore(10, true)
	svc := NewPostService(store.Posts, store.Account, nil, nil, nil, nil, fixedClock)

	_, err := svc.AttachImage(context.Background(), "dummy-1", pngHeader)
	requireCode(t, err, models.CodeValidation)
}

func TestPreview(t *testing.T) {
	svc, _, _, _ := newPostService(t, true)

	html, err := svc.Preview(context.Background(), "dummy-4")
	require.NoError(t, err)
	assert.Contains(t, html, "consejos")
	assert.NotContains(t, html, "<script")
}
