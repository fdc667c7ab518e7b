package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/fact-frenzy/internal/api"
	"github.com/gokatarajesh/fact-frenzy/internal/game"
	"github.com/gokatarajesh/fact-frenzy/internal/identity"
	"github.com/gokatarajesh/fact-frenzy/internal/kv"
	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	"github.com/gokatarajesh/fact-frenzy/internal/logging"
	"github.com/gokatarajesh/fact-frenzy/internal/metrics"
	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

type downStore struct{ kv.Store }

func (downStore) Ping(context.Context) error { return kv.ErrUnavailable }

func newTestHandler(t *testing.T, store kv.Store) http.Handler {
	t.Helper()
	qs, err := question.Default()
	require.NoError(t, err)
	bank := question.NewBank(qs, nil)

	boards := leaderboard.NewService(store, zerolog.Nop(), leaderboard.ServiceOptions{})
	games := game.NewService(game.NewSessionStore(store), bank, boards, zerolog.Nop(), game.ServiceOptions{})
	handlers := api.NewHandlers(games, boards, identity.HeaderProvider{}, metrics.NewGame(prometheus.NewRegistry()), zerolog.Nop(), api.Options{GameReady: true})
	return NewHandler(zerolog.Nop(), store, handlers)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, kv.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(logging.HeaderRequestID))
}

func TestReadyzReflectsStore(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, kv.NewMemoryStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newTestHandler(t, downStore{kv.NewMemoryStore()}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestHandler(t, kv.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/init", nil)
	req.Header.Set(logging.HeaderRequestID, "req-123")
	req.Header.Set(identity.HeaderPostID, "t3_abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(logging.HeaderRequestID))
	assert.JSONEq(t, `{"type":"init","postId":"t3_abc","username":"anonymous","gameReady":true}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t, kv.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
