package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Windsign/internal/auth"
	"Windsign/internal/config"
	"Windsign/internal/metrics"
)

func newServer(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>Windsign</h1>"), 0o644))

	cfg := &config.Config{
		TokenKey:        "test-key",
		RateLimit:       1000,
		RateBurst:       1000,
		ShutdownTimeout: time.Second,
		StaticDir:       static,
	}
	reg := prometheus.NewRegistry()
	r := mux.NewRouter()
	HandleList(r, cfg, zerolog.Nop(), metrics.New(reg), reg)
	return CORS(r), cfg
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(h, http.MethodPost, "/api/calculate-wind-loading",
		`{"sign_width":2,"sign_height":1,"sign_depth":0.1,"building_height":5,"altitude":0,"v_map":22}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sign_type":"wall_mounted"`)

	rec = do(h, http.MethodPost, "/api/tools/panel/calc", `{"channel_spacing":400,"wind_pressure":800}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/calculate-wind-loading", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Windsign")
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := newServer(t)
	rec := do(h, http.MethodGet, "/api/info", "", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestPremiumRoutesNeedCredentials(t *testing.T) {
	h, cfg := newServer(t)
	body := `{"wind_pressure":828}`

	rec := do(h, http.MethodPost, "/api/premium/recommend/spacing", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env := &auth.Authenv{JWTkey: []byte(cfg.TokenKey)}
	token, err := env.IssueToken("tester", time.Now(), time.Minute)
	require.NoError(t, err)
	rec = do(h, http.MethodPost, "/api/premium/recommend/spacing", body, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ADEQUATE"`)
}

func TestPremiumRoutesOffWithoutCredentials(t *testing.T) {
	cfg := &config.Config{RateLimit: 1000, RateBurst: 1000, StaticDir: t.TempDir()}
	require.False(t, cfg.Premium())
	reg := prometheus.NewRegistry()
	r := mux.NewRouter()
	HandleList(r, cfg, zerolog.Nop(), metrics.New(reg), reg)

	rec := do(r, http.MethodPost, "/api/premium/recommend/spacing", `{"wind_pressure":828}`, map[string]string{auth.APIKeyHeader: "anything"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"premium features are not enabled on this server"}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newServer(t)
	do(h, http.MethodGet, "/api/health", "", nil)
	do(h, http.MethodPost, "/api/tools/wall/calc", `{"sign_width":2,"sign_height":1,"sign_depth":0.1,"building_height":5,"v_map":22}`, nil)

	rec := do(h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `windsign_http_requests_total{code="2xx",route="/api/health"} 1`)
	assert.Contains(t, out, `windsign_calculations_total{sign_type="wall_mounted"`)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/calculate-wind-loading", &bytes.Buffer{})
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{RateLimit: 1, RateBurst: 1, StaticDir: t.TempDir()}
	reg := prometheus.NewRegistry()
	r := mux.NewRouter()
	HandleList(r, cfg, zerolog.Nop(), metrics.New(reg), reg)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/api/health", "", nil).Code)
}
