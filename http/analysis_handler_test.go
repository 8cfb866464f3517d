package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-agent/domain"
	"rental-agent/repository"
	"rental-agent/service"
)

func newTestRouter(t *testing.T, requests int) http.Handler {
	t.Helper()

	repo := repository.NewAnalysisRepositoryMemory()
	analysisService := service.NewAnalysisService(repo, repository.NewMemoryCache(), time.Hour)
	limiter := NewRateLimiter(requests, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(
		NewAnalysisHandler(analysisService),
		NewFinancingHandler(service.NewFinancingService()),
		limiter,
	)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCalculateHandler_OK(t *testing.T) {
	router := newTestRouter(t, 5)

	w := postJSON(t, router, "/analysis/calculate", domain.DefaultInputs())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Cached)
	assert.Len(t, result.Analysis.YearlyProjections, 30)
	assert.InDelta(t, 1556.64, result.Analysis.Mortgage.MonthlyPI, 0.01)
}

func TestCalculateHandler_AllCashEncodesNullDSCR(t *testing.T) {
	router := newTestRouter(t, 5)

	in := domain.DefaultInputs()
	in.DownPaymentPercent = 100

	w := postJSON(t, router, "/analysis/calculate", in)
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Analysis struct {
			Returns map[string]any `json:"returns"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	dscr, ok := raw.Analysis.Returns["dscr"]
	require.True(t, ok)
	assert.Nil(t, dscr)
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/analysis/calculate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodPost, "/analysis/calculate", bytes.NewBufferString(`{invalid json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodPost, "/analysis/calculate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateHandler_InvalidInput(t *testing.T) {
	router := newTestRouter(t, 5)

	in := domain.DefaultInputs()
	in.DownPaymentPercent = 150

	w := postJSON(t, router, "/analysis/calculate", in)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetHandler(t *testing.T) {
	router := newTestRouter(t, 10)

	w := postJSON(t, router, "/analysis/calculate", domain.DefaultInputs())
	require.Equal(t, http.StatusOK, w.Code)

	var created domain.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/analysis/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)

	req = httptest.NewRequest(http.MethodGet, "/analysis/does-not-exist", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDefaultsHandler(t *testing.T) {
	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/analysis/defaults", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var in domain.PropertyInputs
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &in))
	assert.Equal(t, domain.DefaultInputs(), in)
}

func TestExportCSVHandler(t *testing.T) {
	router := newTestRouter(t, 5)

	w := postJSON(t, router, "/analysis/export.csv", domain.DefaultInputs())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 31)
}

func TestRateLimitedRoutes(t *testing.T) {
	router := newTestRouter(t, 2)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/analysis/defaults", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/analysis/defaults", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health is never limited.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
