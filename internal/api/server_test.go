package api_test

import (
	"context"
	"creditscore/internal/api"
	"creditscore/internal/api/handler/v1handler"
	"creditscore/pkg/controller"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func testOptions() api.Options {
	return api.Options{
		Session: controller.SessionOptions{
			CookieName: "cs_session",
			Secret:     []byte("test-secret"),
			TTL:        time.Hour,
		},
		CORS:           controller.CORSOptions{AllowedOrigins: []string{"http://localhost:3000"}},
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	}
}

func newServer(t *testing.T, health api.Pinger) http.Handler {
	t.Helper()
	srv, err := api.NewServer(api.Deps{
		Deps:   v1handler.Deps{ChainID: 80001},
		Health: health,
	}, testOptions())
	require.NoError(t, err)

	return srv.Handler
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestNewServer_RequiresSessionSecret(t *testing.T) {
	opts := testOptions()
	opts.Session.Secret = nil

	_, err := api.NewServer(api.Deps{}, opts)
	require.Error(t, err)
}

func TestServer_Routes(t *testing.T) {
	h := newServer(t, nil)

	rec := get(h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = get(h, "/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "DeFi Credit Score API")

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/v1/chains")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	rec = get(h, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_IssuesSessionCookie(t *testing.T) {
	h := newServer(t, nil)

	rec := get(h, "/v1/chains")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "cs_session", cookies[0].Name)

	id, err := controller.ParseSession(testOptions().Session, cookies[0].Value)
	require.NoError(t, err)
	require.NotEmpty(t, id)
}

func TestServer_CORS(t *testing.T) {
	h := newServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/chains", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_HealthCheckFailure(t *testing.T) {
	h := newServer(t, pingFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	rec := get(h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_V1AndLegacyRoutes(t *testing.T) {
	h := newServer(t, nil)

	rec := get(h, "/v1/wallet/connect")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Allow"))

	rec = get(h, "/v1/scores/0x1234/extra")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(h, "/api/credit-score")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"CSV file not found"}`, rec.Body.String())
}
