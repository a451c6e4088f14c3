package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-assess/internal/domain"
	"ai-assess/internal/dto"
	"ai-assess/internal/evaluator"
	"ai-assess/internal/handler"
	"ai-assess/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockReportService
type MockReportService struct {
	ScoreRegistrationFunc func(ctx context.Context, registrationID int64) (*domain.Report, error)
	EvaluateBatchFunc     func(ctx context.Context, reqs []domain.EvaluationRequest) (*domain.BatchResult, error)
}

func (m *MockReportService) ScoreRegistration(ctx context.Context, registrationID int64) (*domain.Report, error) {
	if m.ScoreRegistrationFunc != nil {
		return m.ScoreRegistrationFunc(ctx, registrationID)
	}
	panic("MockReportService.ScoreRegistrationFunc not implemented")
}

func (m *MockReportService) EvaluateBatch(ctx context.Context, reqs []domain.EvaluationRequest) (*domain.BatchResult, error) {
	if m.EvaluateBatchFunc != nil {
		return m.EvaluateBatchFunc(ctx, reqs)
	}
	panic("MockReportService.EvaluateBatchFunc not implemented")
}

// MockCache
type MockCache struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Get(context.Context, string) (string, error) { return "", domain.ErrCacheMiss }
func (m *MockCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (m *MockCache) Delete(context.Context, string) error { return nil }
func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func setupApp(reports domain.ReportService, cache domain.Cache) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.SetupRoutes(app,
		handler.NewEvaluationHandler(evaluator.New(nil), reports),
		handler.NewHealthHandler(cache, false))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestEvaluate(t *testing.T) {
	app := setupApp(&MockReportService{}, nil)

	tests := []struct {
		name    string
		body    dto.EvaluateRequest
		correct bool
		conf    int
		kind    string
	}{
		{"mcq label", dto.EvaluateRequest{Question: "Capital of France?", UserAnswer: "B", ReferenceAnswer: "b) Paris", QuestionType: "MCQ"}, true, 95, "MCQ"},
		{"boolean hinglish", dto.EvaluateRequest{Question: "Go has generics", UserAnswer: "haan", ReferenceAnswer: "true", QuestionType: "boolean"}, true, 100, "TRUE_FALSE"},
		{"empty answer", dto.EvaluateRequest{Question: "Explain GC", UserAnswer: "  ", ReferenceAnswer: "tracing", QuestionType: "SA"}, false, 100, "SHORT_ANSWER"},
		{"unknown type", dto.EvaluateRequest{Question: "q", UserAnswer: "Polymorphism", ReferenceAnswer: "polymorphism", QuestionType: "essay"}, true, 100, "SHORT_ANSWER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := doJSON(t, app, http.MethodPost, "/api/evaluate", tt.body)
			require.Equal(t, http.StatusOK, status, string(raw))

			var resp dto.EvaluateResponse
			require.NoError(t, json.Unmarshal(raw, &resp))
			assert.Equal(t, tt.correct, resp.IsCorrect)
			assert.Equal(t, tt.conf, resp.Confidence)
			assert.Equal(t, tt.kind, resp.QuestionKind)
			assert.NotEmpty(t, resp.Reason)
		})
	}
}

func TestEvaluate_ValidationError(t *testing.T) {
	app := setupApp(&MockReportService{}, nil)

	status, raw := doJSON(t, app, http.MethodPost, "/api/evaluate", dto.EvaluateRequest{UserAnswer: "x"})
	assert.Equal(t, http.StatusBadRequest, status)

	var resp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "question", resp.Errors[0].Field)
}

func TestEvaluate_MalformedBody(t *testing.T) {
	app := setupApp(&MockReportService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateBatch(t *testing.T) {
	var got []domain.EvaluationRequest
	reports := &MockReportService{
		EvaluateBatchFunc: func(_ context.Context, reqs []domain.EvaluationRequest) (*domain.BatchResult, error) {
			got = reqs
			return &domain.BatchResult{
				Verdicts: []domain.Verdict{
					domain.NewVerdict(true, 95, "Option B matches the correct option", domain.MethodOptionLabel),
					domain.NewVerdict(false, 60, "No sufficient match (fallback mode)", domain.MethodFallback),
				},
				Correct: 1,
				Total:   2,
			}, nil
		},
	}
	app := setupApp(reports, nil)

	body := dto.BatchEvaluateRequest{Items: []dto.EvaluateRequest{
		{Question: "q1", UserAnswer: "B", ReferenceAnswer: "b) Paris", QuestionType: "mcq"},
		{Question: "q2", UserAnswer: "something", ReferenceAnswer: "tracing collector", QuestionType: "CODING"},
	}}
	status, raw := doJSON(t, app, http.MethodPost, "/api/evaluate/batch", body)
	require.Equal(t, http.StatusOK, status, string(raw))

	var resp dto.BatchEvaluateResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 1, resp.Correct)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Verdicts, 2)
	assert.Equal(t, "MCQ", resp.Verdicts[0].QuestionKind)
	assert.Equal(t, "CODE", resp.Verdicts[1].QuestionKind)

	require.Len(t, got, 2)
	assert.Equal(t, domain.KindCode, got[1].Kind)
}

func TestEvaluateBatch_TooManyItems(t *testing.T) {
	app := setupApp(&MockReportService{}, nil)
	items := make([]dto.EvaluateRequest, 201)
	for i := range items {
		items[i] = dto.EvaluateRequest{Question: "q", ReferenceAnswer: "r"}
	}
	status, _ := doJSON(t, app, http.MethodPost, "/api/evaluate/batch", dto.BatchEvaluateRequest{Items: items})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetRegistrationReport(t *testing.T) {
	generated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	reports := &MockReportService{
		ScoreRegistrationFunc: func(_ context.Context, id int64) (*domain.Report, error) {
			if id != 42 {
				return nil, domain.NewRegistrationNotFoundError(id)
			}
			return &domain.Report{
				ID: "01HZX3K5J8Q9V7T6R5N4M3B2A1", RegistrationID: 42, Total: 2, Attempted: 2, Correct: 1, ScorePercent: 50,
				Items: []domain.ItemResult{
					{QuestionID: 1, Kind: domain.KindMCQ, Attempted: true, Verdict: domain.NewVerdict(true, 100, "Exact match", domain.MethodExact)},
					{QuestionID: 2, Kind: domain.KindCode, Attempted: true, Verdict: domain.NewVerdict(false, 60, "No sufficient match (fallback mode)", domain.MethodFallback)},
				},
				GeneratedAt: generated,
			}, nil
		},
	}
	app := setupApp(reports, nil)

	status, raw := doJSON(t, app, http.MethodGet, "/api/registrations/42/report", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 50.0, resp.ScorePercent)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "fallback", resp.Items[1].Method)
	assert.True(t, generated.Equal(resp.GeneratedAt))

	status, _ = doJSON(t, app, http.MethodGet, "/api/registrations/7/report", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/registrations/abc/report", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetRegistrationReport_ServiceError(t *testing.T) {
	reports := &MockReportService{
		ScoreRegistrationFunc: func(context.Context, int64) (*domain.Report, error) {
			return nil, domain.NewInternalError("failed to load answer sheet", errors.New("db down"))
		},
	}
	status, _ := doJSON(t, setupApp(reports, nil), http.MethodGet, "/api/registrations/3/report", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestHealth(t *testing.T) {
	status, raw := doJSON(t, setupApp(&MockReportService{}, nil), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Cache)
	assert.Equal(t, "fallback_only", resp.Judge)

	cache := &MockCache{PingFunc: func(context.Context) error { return errors.New("refused") }}
	status, raw = doJSON(t, setupApp(&MockReportService{}, cache), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "unavailable", resp.Cache)
}
