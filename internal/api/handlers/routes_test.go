package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/analytics"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)

type stubAI struct {
	post        string
	suggestions []string
	err         error
}

func (s *stubAI) GeneratePost(ctx context.Context, req ai.PostRequest) (string, error) {
	return s.post, s.err
}

func (s *stubAI) GenerateSuggestions(ctx context.Context, req ai.AutopilotRequest) ([]string, error) {
	return s.suggestions, s.err
}

func (s *stubAI) AnalyzeThemes(ctx context.Context, posts []string) ([]string, error) {
	return []string{"Liderazgo"}, s.err
}

func (s *stubAI) EnhancePrompt(ctx context.Context, raw string) (string, error) {
	return "mejorado: " + raw, s.err
}

// newTestApp serves the demo workspace with credits on the account. A nil
// client leaves the AI features unconfigured.
func newTestApp(t *testing.T, credits int, client ai.Client) (*fiber.App, *repository.Store) {
	t.Helper()

	clock := func() time.Time { return testNow }
	store := repository.NewMemoryStore(models.Account{
		Plan:     models.PlanFree,
		Credits:  credits,
		Level:    1,
		Language: "es",
		Timezone: "UTC",
	}, true, testNow)

	accounts := service.NewAccountService(store.Account, store.Notifications, clock)
	personalization := service.NewPersonalizationService(store.Personalization, store.Account)
	posts := service.NewPostService(store.Posts, store.Account, accounts, nil, nil, nil, clock)

	app := fiber.New()
	RegisterRoutes(app.Group("/api"), Services{
		Posts:           posts,
		Statistics:      service.NewStatisticsService(store.Posts, store.Account, nil, clock),
		Generator:       service.NewGeneratorService(client, accounts, posts, personalization, store, clock),
		Autopilot:       service.NewAutopilotService(client, accounts, posts, personalization, store, clock),
		Knowledge:       service.NewKnowledgeService(store.Knowledge),
		Inspiration:     service.NewInspirationService(store.Inspiration),
		Personalization: personalization,
		Accounts:        accounts,
		Notifications:   service.NewNotificationService(store.Notifications, store.Posts, store.Account, nil, clock),
	})
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestListPostsFiltersByDisplayStatus(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodGet, "/api/posts?status=published", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	posts := decode[[]models.Post](t, resp)
	assert.Len(t, posts, 5)
	for _, p := range posts {
		assert.Equal(t, models.PostStatusScheduled, p.Status)
		assert.True(t, p.ScheduledAt.Before(testNow))
	}
}

func TestListPostsRejectsUnknownStatus(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodGet, "/api/posts?status=archived", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, models.CodeValidation, body.Code)
}

func TestGetPostNotFound(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodGet, "/api/posts/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, models.CodeNotFound, decode[ErrorResponse](t, resp).Code)
}

func TestCreateScheduleAndUnschedulePost(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPost, "/api/posts", map[string]string{"content": "Hola **mundo**"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[models.Post](t, resp)
	assert.Equal(t, models.PostStatusDraft, created.Status)

	at := testNow.Add(48 * time.Hour)
	resp = do(t, app, http.MethodPost, "/api/posts/"+created.ID+"/schedule", map[string]time.Time{"scheduledAt": at})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	scheduled := decode[models.Post](t, resp)
	assert.Equal(t, models.PostStatusScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledAt)
	assert.True(t, at.Equal(*scheduled.ScheduledAt))

	resp = do(t, app, http.MethodPost, "/api/posts/"+created.ID+"/unschedule", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	draft := decode[models.Post](t, resp)
	assert.Equal(t, models.PostStatusDraft, draft.Status)
	assert.Nil(t, draft.ScheduledAt)

	resp = do(t, app, http.MethodGet, "/api/posts/"+created.ID+"/preview", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	preview := decode[map[string]string](t, resp)
	assert.Contains(t, preview["html"], "<strong>mundo</strong>")
}

func TestUpdatePostRejectsNegativeMetrics(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPatch, "/api/posts/dummy-3", map[string]int{"views": -1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRemovePost(t *testing.T) {
	app, store := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodDelete, "/api/posts/dummy-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	post, err := store.Posts.GetByID(context.Background(), "dummy-1")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "image.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts/dummy-1/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadImageRequiresFile(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPost, "/api/posts/dummy-1/image", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStatisticsReport(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodGet, "/api/statistics?range=7d", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	report := decode[analytics.Report](t, resp)
	assert.Equal(t, "7d", report.Range)
	assert.True(t, report.HasData)
	assert.Len(t, report.Series, 7)
	assert.NotEmpty(t, report.Insights)
}

func TestGenerateConsumesCredit(t *testing.T) {
	app, store := newTestApp(t, 3, &stubAI{post: "Un post generado"})

	resp := do(t, app, http.MethodPost, "/api/generator/generate", map[string]string{"prompt": "Liderazgo"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode[service.GenerateResult](t, resp)
	assert.Equal(t, "Un post generado", result.Content)
	assert.Equal(t, 2, result.Credits)

	account, err := store.Account.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, account.Credits)
}

func TestGenerateWithoutCredits(t *testing.T) {
	app, _ := newTestApp(t, 0, &stubAI{post: "x"})

	resp := do(t, app, http.MethodPost, "/api/generator/generate", map[string]string{"prompt": "Liderazgo"})
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, models.CodeInsufficientCredits, decode[ErrorResponse](t, resp).Code)
}

func TestGenerateWithoutAIClient(t *testing.T) {
	app, _ := newTestApp(t, 5, nil)

	resp := do(t, app, http.MethodPost, "/api/generator/generate", map[string]string{"prompt": "Liderazgo"})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, models.CodeAIUnavailable, decode[ErrorResponse](t, resp).Code)
}

func TestGenerateMalformedBody(t *testing.T) {
	app, _ := newTestApp(t, 5, &stubAI{post: "x"})

	req := httptest.NewRequest(http.MethodPost, "/api/generator/generate", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAutopilotKeywordsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodDelete, "/api/autopilot/keywords", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/autopilot/keywords", map[string]string{"keyword": "Marca personal"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Marca personal"}, decode[[]string](t, resp))

	resp = do(t, app, http.MethodDelete, "/api/autopilot/keywords/Marca%20personal", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]string](t, resp))
}

func TestAutopilotGenerateAndApprove(t *testing.T) {
	app, _ := newTestApp(t, 10, &stubAI{suggestions: []string{"Idea uno", "Idea dos", "Idea tres"}})

	resp := do(t, app, http.MethodPost, "/api/autopilot/generate", map[string]int{"frequency": 3})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[service.AutopilotResult](t, resp)
	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, 7, result.Credits)

	resp = do(t, app, http.MethodPost, "/api/autopilot/suggestions/"+result.Suggestions[0].ID+"/approve", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	draft := decode[models.Post](t, resp)
	assert.Equal(t, "Idea uno", draft.Content)
	assert.Equal(t, models.PostStatusDraft, draft.Status)

	resp = do(t, app, http.MethodPost, "/api/autopilot/suggestions/"+result.Suggestions[0].ID+"/approve", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestKnowledgeCRUD(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPost, "/api/knowledge", map[string]string{"title": "Producto", "content": "Kolink ayuda a crear posts"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := decode[models.KnowledgeItem](t, resp)

	resp = do(t, app, http.MethodPatch, "/api/knowledge/"+item.ID, map[string]string{"title": "Producto", "content": "Actualizado"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Actualizado", decode[models.KnowledgeItem](t, resp).Content)

	resp = do(t, app, http.MethodDelete, "/api/knowledge/"+item.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/knowledge/"+item.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInspirationRequiresContent(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPost, "/api/inspiration", map[string]string{"content": "  "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddAndRemovePractice(t *testing.T) {
	app, _ := newTestApp(t, 10, nil)

	resp := do(t, app, http.MethodPost, "/api/personalization/practices", map[string]string{"text": "Responder en la primera hora"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	practice := decode[models.BestPractice](t, resp)

	resp = do(t, app, http.MethodDelete, "/api/personalization/practices/"+practice.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestSelectPlanResetsCredits(t *testing.T) {
	app, _ := newTestApp(t, 1, nil)

	resp := do(t, app, http.MethodPost, "/api/account/plan", map[string]string{"plan": models.PlanPremium})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	account := decode[map[string]any](t, resp)
	assert.EqualValues(t, models.PlanCredits[models.PlanPremium], account["credits"])

	resp = do(t, app, http.MethodPost, "/api/account/plan", map[string]string{"plan": "Enterprise"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSettingsRejectsUnknownLanguage(t *testing.T) {
	app, _ := newTestApp(t, 1, nil)

	resp := do(t, app, http.MethodPut, "/api/account/settings", map[string]string{"language": "de", "timezone": "UTC"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotificationsMarkAllRead(t *testing.T) {
	app, _ := newTestApp(t, 1, nil)

	resp := do(t, app, http.MethodPost, "/api/notifications/read-all", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/notifications/unread-count", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[map[string]int](t, resp)["unread"])
}
