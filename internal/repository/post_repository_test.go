package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{"id", "content", "status", "scheduled_at", "image", "views", "likes", "comments", "task_status", "created_at", "updated_at"}

func TestPostRepositoryGetByIDScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow("p1", "hello", models.PostStatusDraft, nil, nil, nil, nil, nil, models.TaskStatusTodo, created, created))

	repo := NewPostRepository(db)
	post, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, "hello", post.Content)
	assert.Nil(t, post.ScheduledAt)
	assert.Nil(t, post.Image)
	assert.Nil(t, post.Views)
	assert.Equal(t, models.TaskStatusTodo, post.TaskStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	post, err := NewPostRepository(db).GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, post)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryListScansMetrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow("p1", "live", models.PostStatusScheduled, at, "https://img", int64(100), int64(7), int64(3), models.TaskStatusCompleted, at, at).
			AddRow("p2", "draft", models.PostStatusDraft, nil, nil, nil, nil, nil, models.TaskStatusTodo, at, at))

	posts, err := NewPostRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	require.NotNil(t, posts[0].ScheduledAt)
	assert.True(t, posts[0].ScheduledAt.Equal(at))
	assert.True(t, posts[0].HasImage())
	assert.Equal(t, int64(100), posts[0].ViewCount())
	assert.Equal(t, int64(10), posts[0].Engagement())
	assert.False(t, posts[1].HasImage())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewPostRepository(db).Update(context.Background(), &models.Post{ID: "gone", Status: models.PostStatusDraft})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryRemove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPostRepository(db).Remove(context.Background(), "p1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
