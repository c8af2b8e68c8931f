package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeThemes(t *testing.T) {
	keywords := []string{"IA", "Marketing Digital", "Startups"}

	merged := MergeThemes(keywords, []string{"IA", "Liderazgo", "Ventas", "Producto"})
	assert.Equal(t, []string{"IA", "Marketing Digital", "Startups", "Liderazgo", "Ventas"}, merged)

	assert.Equal(t, []string{"Uno"}, MergeThemes(nil, []string{" Uno ", "", "Uno"}))
	assert.Len(t, MergeThemes([]string{"a", "b", "c", "d", "e"}, []string{"f"}), MaxKeywords)
}

func TestValidFrequency(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		assert.True(t, ValidFrequency(n))
	}
	for _, n := range []int{0, 2, 4, 6, -1} {
		assert.False(t, ValidFrequency(n))
	}
}

func TestKeywordManagement(t *testing.T) {
	ctx := context.Background()
	svc := newServices(newTestStore(10, true), &fakeAI{})

	keywords, err := svc.autopilot.AddKeyword(ctx, " Liderazgo ")
	require.NoError(t, err)
	assert.Equal(t, "Liderazgo", keywords[len(keywords)-1])

	keywords, err = svc.autopilot.AddKeyword(ctx, "Liderazgo")
	require.NoError(t, err)
	assert.Len(t, keywords, 4)

	_, err = svc.autopilot.AddKeyword(ctx, "Ventas")
	require.NoError(t, err)
	_, err = svc.autopilot.AddKeyword(ctx, "Producto")
	requireCode(t, err, models.CodeValidation)

	keywords, err = svc.autopilot.RemoveKeyword(ctx, "Marketing Digital")
	require.NoError(t, err)
	assert.NotContains(t, keywords, "Marketing Digital")

	require.NoError(t, svc.autopilot.ClearKeywords(ctx))
	keywords, err = svc.autopilot.Keywords(ctx)
	require.NoError(t, err)
	assert.Empty(t, keywords)
}

func TestAnalyzeThemesNeedsPublishedPosts(t *testing.T) {
	svc := newServices(newTestStore(10, false), &fakeAI{themes: []string{"IA"}})

	_, err := svc.autopilot.AnalyzeThemes(context.Background())
	requireCode(t, err, models.CodeValidation)
	assert.Zero(t, svc.ai.calls)
}

func TestAnalyzeThemesMergesKeywords(t *testing.T) {
	ctx := context.Background()
	svc := newServices(newTestStore(10, true), &fakeAI{themes: []string{"Marketing Digital", "Trabajo Remoto", "Liderazgo", "Libros"}})

	keywords, err := svc.autopilot.AnalyzeThemes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Inteligencia Artificial", "Marketing Digital", "Crecimiento de Startups", "Trabajo Remoto", "Liderazgo",
	}, keywords)

	// Only the five published demo posts are analysed, and for free.
	require.Len(t, svc.ai.themeInputs, 1)
	assert.Len(t, svc.ai.themeInputs[0], 5)
	assert.Equal(t, 10, currentCredits(t, svc.store))
}

func TestAutopilotGenerateRequiresOccupation(t *testing.T) {
	svc := newServices(newTestStore(10, false), &fakeAI{suggestions: []string{"a"}})

	_, err := svc.autopilot.Generate(context.Background(), AutopilotRequest{Frequency: 1})
	requireCode(t, err, models.CodeValidation)
	assert.Equal(t, 10, currentCredits(t, svc.store))
	assert.Zero(t, svc.ai.calls)
}

func TestAutopilotGenerateRejectsFrequency(t *testing.T) {
	svc := newServices(newTestStore(10, true), &fakeAI{})

	_, err := svc.autopilot.Generate(context.Background(), AutopilotRequest{Frequency: 2})
	requireCode(t, err, models.CodeValidation)
	assert.Equal(t, 10, currentCredits(t, svc.store))
}

func TestAutopilotGenerateConsumesFrequencyCredits(t *testing.T) {
	ctx := context.Background()
	svc := newServices(newTestStore(10, true), &fakeAI{suggestions: []string{"uno", "dos", "tres"}})

	result, err := svc.autopilot.Generate(ctx, AutopilotRequest{
		Frequency:    3,
		CustomTopics: "liderazgo",
		Advanced:     &ai.AdvancedSettings{Length: ai.LengthShort, Creativity: 0.2},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Credits)
	assert.Equal(t, XPAutopilotGenerate, result.Progress.XP)
	require.Len(t, result.Suggestions, 3)
	for _, s := range result.Suggestions {
		assert.Equal(t, models.SuggestionPending, s.Status)
	}

	req := svc.ai.autopilotRequests[0]
	assert.Equal(t, 3, req.Frequency)
	assert.Equal(t, DefaultTone, req.Tone)
	assert.Equal(t, []string{"Inteligencia Artificial", "Marketing Digital", "Crecimiento de Startups"}, req.Themes)
	assert.Equal(t, ai.EmojiSubtle, req.Advanced.EmojiUsage)
	assert.Equal(t, 0.2, req.Advanced.Creativity)

	stored, err := svc.autopilot.Suggestions(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestAutopilotGenerateMalformedResponse(t *testing.T) {
	svc := newServices(newTestStore(10, true), &fakeAI{err: ai.ErrMalformedResponse})

	_, err := svc.autopilot.Generate(context.Background(), AutopilotRequest{Frequency: 5})
	requireCode(t, err, models.CodeAIUnavailable)
	assert.Equal(t, 5, currentCredits(t, svc.store))
}

func TestAutopilotGenerateInsufficientCredits(t *testing.T) {
	svc := newServices(newTestStore(2, true), &fakeAI{suggestions: []string{"a", "b", "c"}})

	_, err := svc.autopilot.Generate(context.Background(), AutopilotRequest{Frequency: 3})
	requireCode(t, err, models.CodeInsufficientCredits)
	assert.Equal(t, 2, currentCredits(t, svc.store))
	assert.Zero(t, svc.ai.calls)
}

func TestApproveAndRejectSuggestions(t *testing.T) {
	ctx := context.Background()
	svc := newServices(newTestStore(10, true), &fakeAI{suggestions: []string{"primero", "segundo"}})

	// frequency only sets the requested batch size; the model decides the count.
	result, err := svc.autopilot.Generate(ctx, AutopilotRequest{Frequency: 1})
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 2)
	first, second := result.Suggestions[0], result.Suggestions[1]

	post, err := svc.autopilot.Approve(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "primero", post.Content)
	assert.Equal(t, models.PostStatusDraft, post.Status)

	stored, err := svc.posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "primero", stored.Content)

	_, err = svc.autopilot.Approve(ctx, first.ID)
	requireCode(t, err, models.CodeValidation)

	rejected, err := svc.autopilot.Reject(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SuggestionRejected, rejected.Status)

	_, err = svc.autopilot.Reject(ctx, "missing")
	requireCode(t, err, models.CodeNotFound)

	view, err := svc.accounts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPAutopilotGenerate+XPApproveSuggestion, view.XP)
}
