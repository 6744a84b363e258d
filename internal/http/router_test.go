package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/database/dialogues"
	"github.com/mrlokans/english-hub/internal/database/sentences"
	"github.com/mrlokans/english-hub/internal/database/words"
	"github.com/mrlokans/english-hub/internal/metrics"
)

const testOrigin = "http://localhost:5173"

type testEnv struct {
	router   *gin.Engine
	db       *database.Database
	metrics  *metrics.Collectors
	registry *prometheus.Registry
}

// setupRouter builds the full router on a fresh in-memory store.
func setupRouter(t *testing.T, backups BackupQueue) *testEnv {
	t.Helper()

	db, err := database.NewDatabase(database.Options{Path: database.MemoryPath, LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	router := NewRouter(RouterConfig{
		Database:      db,
		Words:         words.NewRepository(db.DB),
		Sentences:     sentences.NewRepository(db.DB),
		Dialogues:     dialogues.NewRepository(db.DB),
		Backups:       backups,
		Metrics:       m,
		Gatherer:      registry,
		AllowedOrigin: testOrigin,
		Version:       "test",
	})

	return &testEnv{router: router, db: db, metrics: m, registry: registry}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRouter_Health(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	env := setupRouter(t, nil)

	t.Run("preflight from the client origin is allowed", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, "/api/words/1", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight echoes any requested header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, "/api/words", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type,x-client-version")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, w.Code)
		allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
		assert.Contains(t, allowed, "x-client-version")
		assert.Contains(t, allowed, "content-type")
	})

	t.Run("simple request echoes the origin", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/words", nil)
		req.Header.Set("Origin", testOrigin)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins are rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/words", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_SecurityHeaders(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRouter_Metrics(t *testing.T) {
	env := setupRouter(t, nil)

	env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "ramp up", "meaning_cn": "加速推进"})
	env.do(t, http.MethodDelete, "/api/words/999", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.RecordMutationsTotal.WithLabelValues("word", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.RequestsTotal.WithLabelValues("DELETE", "/api/words/:id", "404")))

	w := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hub_requests_total")
}

type fakeBackupQueue struct {
	reasons  []string
	err      error
	statuses map[string]string
}

func (f *fakeBackupQueue) EnqueueBackup(reason string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.reasons = append(f.reasons, reason)
	return "task-1", nil
}

func (f *fakeBackupQueue) BackupStatus(ctx context.Context, taskID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if status, ok := f.statuses[taskID]; ok {
		return status, nil
	}
	return "not_found", nil
}

func TestRouter_Backup(t *testing.T) {
	t.Run("enqueues a manual backup", func(t *testing.T) {
		queue := &fakeBackupQueue{}
		env := setupRouter(t, queue)

		w := env.do(t, http.MethodPost, "/api/admin/backup", nil)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"manual"}, queue.reasons)
		assert.Contains(t, w.Body.String(), "task-1")
	})

	t.Run("reports unavailable without a task queue", func(t *testing.T) {
		env := setupRouter(t, nil)

		w := env.do(t, http.MethodPost, "/api/admin/backup", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("hides enqueue errors", func(t *testing.T) {
		env := setupRouter(t, &fakeBackupQueue{err: errors.New("database is locked")})

		w := env.do(t, http.MethodPost, "/api/admin/backup", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "locked")
	})
}

func TestRouter_BackupStatus(t *testing.T) {
	t.Run("reports a known task", func(t *testing.T) {
		env := setupRouter(t, &fakeBackupQueue{statuses: map[string]string{"task-1": "success"}})

		w := env.do(t, http.MethodGet, "/api/admin/backup/task-1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[BackupStatusResponse](t, w)
		assert.Equal(t, "task-1", resp.ID)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		env := setupRouter(t, &fakeBackupQueue{})

		w := env.do(t, http.MethodGet, "/api/admin/backup/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reports unavailable without a task queue", func(t *testing.T) {
		env := setupRouter(t, nil)

		w := env.do(t, http.MethodGet, "/api/admin/backup/task-1", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("hides lookup errors", func(t *testing.T) {
		env := setupRouter(t, &fakeBackupQueue{err: errors.New("database is locked")})

		w := env.do(t, http.MethodGet, "/api/admin/backup/task-1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "locked")
	})
}
