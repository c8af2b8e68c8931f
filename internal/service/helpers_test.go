package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/analytics"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func testAccount(credits int) models.Account {
	return models.Account{
		Plan:     models.PlanFree,
		Credits:  credits,
		Level:    1,
		Language: "es",
		Timezone: "UTC",
	}
}

// newTestStore returns a memory store. With demo set it carries the sample
// workspace relative to testNow.
func newTestStore(credits int, demo bool) *repository.Store {
	return repository.NewMemoryStore(testAccount(credits), demo, testNow)
}

func currentCredits(t *testing.T, store *repository.Store) int {
	t.Helper()
	a, err := store.Account.Get(context.Background())
	require.NoError(t, err)
	return a.Credits
}

type fakeAI struct {
	mu          sync.Mutex
	post        string
	suggestions []string
	themes      []string
	enhanced    string
	err         error

	postRequests      []ai.PostRequest
	autopilotRequests []ai.AutopilotRequest
	themeInputs       [][]string
	calls             int
}

func (f *fakeAI) GeneratePost(ctx context.Context, req ai.PostRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.postRequests = append(f.postRequests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.post, nil
}

func (f *fakeAI) GenerateSuggestions(ctx context.Context, req ai.AutopilotRequest) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.autopilotRequests = append(f.autopilotRequests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestions, nil
}

func (f *fakeAI) AnalyzeThemes(ctx context.Context, posts []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.themeInputs = append(f.themeInputs, posts)
	if f.err != nil {
		return nil, f.err
	}
	return f.themes, nil
}

func (f *fakeAI) EnhancePrompt(ctx context.Context, raw string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.enhanced, nil
}

type fakeScheduler struct {
	postIDs []string
	times   []time.Time
}

func (f *fakeScheduler) SchedulePostLive(ctx context.Context, postID string, at time.Time) error {
	f.postIDs = append(f.postIDs, postID)
	f.times = append(f.times, at)
	return nil
}

type fakeStatsCache struct {
	reports       map[string]*analytics.Report
	validUntil    map[string]time.Time
	gets          int
	sets          int
	invalidations int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{reports: map[string]*analytics.Report{}, validUntil: map[string]time.Time{}}
}

func (f *fakeStatsCache) Get(ctx context.Context, field string, now time.Time) (*analytics.Report, bool, error) {
	f.gets++
	r, ok := f.reports[field]
	if ok && !now.Before(f.validUntil[field]) {
		return nil, false, nil
	}
	return r, ok, nil
}

func (f *fakeStatsCache) Set(ctx context.Context, field string, report *analytics.Report, validUntil time.Time) error {
	f.sets++
	f.reports[field] = report
	f.validUntil[field] = validUntil
	return nil
}

func (f *fakeStatsCache) Invalidate(ctx context.Context) error {
	f.invalidations++
	f.reports = map[string]*analytics.Report{}
	f.validUntil = map[string]time.Time{}
	return nil
}

type fakeStorage struct {
	url  string
	data []byte
}

func (f *fakeStorage) UploadImage(ctx context.Context, data []byte) (string, error) {
	if _, err := DetectImage(data); err != nil {
		return "", err
	}
	f.data = data
	return f.url, nil
}

// services wires every service over one store the way the server does.
type services struct {
	store           *repository.Store
	ai              *fakeAI
	accounts        AccountService
	posts           PostService
	personalization PersonalizationService
	generator       GeneratorService
	autopilot       AutopilotService
	notifications   NotificationService
}

func newServices(store *repository.Store, client *fakeAI) *services {
	accounts := NewAccountService(store.Account, store.Notifications, fixedClock)
	posts := NewPostService(store.Posts, store.Account, accounts, nil, nil, nil, fixedClock)
	personalization := NewPersonalizationService(store.Personalization, store.Account)

	var aiClient ai.Client
	if client != nil {
		aiClient = client
	}
	return &services{
		store:           store,
		ai:              client,
		accounts:        accounts,
		posts:           posts,
		personalization: personalization,
		generator:       NewGeneratorService(aiClient, accounts, posts, personalization, store, fixedClock),
		autopilot:       NewAutopilotService(aiClient, accounts, posts, personalization, store, fixedClock),
		notifications:   NewNotificationService(store.Notifications, store.Posts, store.Account, nil, fixedClock),
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, models.ErrorCode(err))
}
