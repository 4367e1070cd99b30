package superadmin_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordidev/recetaskit/pkg/audit"
	"github.com/ordidev/recetaskit/pkg/superadmin"
)

type fakeAuditStorage struct {
	mu      sync.Mutex
	entries []audit.Entry
	err     error
	stored  chan struct{}
}

func newFakeAuditStorage() *fakeAuditStorage {
	return &fakeAuditStorage{stored: make(chan struct{}, 16)}
}

func (f *fakeAuditStorage) Store(ctx context.Context, entry audit.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored <- struct{}{}
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditStorage) all() []audit.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]audit.Entry(nil), f.entries...)
}

func (f *fakeAuditStorage) waitStored(t *testing.T) {
	t.Helper()
	select {
	case <-f.stored:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit write")
	}
}

func (f *fakeAuditStorage) expectNoWrite(t *testing.T) {
	t.Helper()
	select {
	case <-f.stored:
		t.Fatal("unexpected audit write")
	case <-time.After(100 * time.Millisecond):
	}
}

func auditRouter(storage *fakeAuditStorage, admin *superadmin.Admin, handler http.HandlerFunc) chi.Router {
	recorder := audit.NewRecorder(storage)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(superadmin.WithAdmin(req.Context(), admin)))
		})
	})
	r.Use(superadmin.Audit(recorder))
	r.Post("/api/superadmin/tenants/{tenantID}/suspend", handler)
	r.Post("/api/superadmin/users", handler)
	r.Get("/api/superadmin/tenants", handler)
	return r
}

func TestAudit(t *testing.T) {
	t.Parallel()

	admin := &superadmin.Admin{ID: uuid.New(), Role: superadmin.RoleSuperAdmin}
	ok := func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"suspended"}`))
	}

	t.Run("successful mutating request is recorded", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		router := auditRouter(storage, admin, ok)
		tenantID := uuid.New()

		req := httptest.NewRequest(http.MethodPost,
			"/api/superadmin/tenants/"+tenantID.String()+"/suspend?reason=billing",
			strings.NewReader(`{"note":"chronic non-payment"}`))
		req.Header.Set("User-Agent", "console/1.0")
		req.RemoteAddr = "203.0.113.7:54321"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		storage.waitStored(t)

		entries := storage.all()
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, admin.ID, entry.AdminID)
		assert.Equal(t, "POST /api/superadmin/tenants/{tenantID}/suspend", entry.ActionType)
		assert.Equal(t, uuid.NullUUID{UUID: tenantID, Valid: true}, entry.TargetTenantID)
		assert.False(t, entry.TargetUserID.Valid)
		assert.Equal(t, "203.0.113.7", entry.IPAddress)
		assert.Equal(t, "console/1.0", entry.UserAgent)

		var details map[string]any
		require.NoError(t, json.Unmarshal(entry.Details, &details))
		assert.Equal(t, "POST", details["method"])
		assert.Equal(t, "reason=billing", details["query"])
		assert.Equal(t, map[string]any{"note": "chronic non-payment"}, details["body"])
		assert.Equal(t, map[string]any{"status": "suspended"}, details["response"])
	})

	t.Run("target user id falls back to body", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		router := auditRouter(storage, admin, ok)
		userID := uuid.New()

		req := httptest.NewRequest(http.MethodPost, "/api/superadmin/users",
			strings.NewReader(`{"user_id":"`+userID.String()+`"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)

		storage.waitStored(t)
		entries := storage.all()
		require.Len(t, entries, 1)
		assert.Equal(t, uuid.NullUUID{UUID: userID, Valid: true}, entries[0].TargetUserID)
	})

	t.Run("handler still reads the full body", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		var seen string
		router := auditRouter(storage, admin, func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			seen = string(b)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/superadmin/users",
			strings.NewReader(`{"email":"new@recetasapi.com"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, `{"email":"new@recetasapi.com"}`, seen)
	})

	t.Run("reads are not recorded", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		router := auditRouter(storage, admin, ok)

		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/tenants", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		storage.expectNoWrite(t)
	})

	t.Run("failed requests are not recorded", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		router := auditRouter(storage, admin, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnprocessableEntity)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/superadmin/users", strings.NewReader(`{}`))
		router.ServeHTTP(httptest.NewRecorder(), req)

		storage.expectNoWrite(t)
	})

	t.Run("storage failure does not alter the response", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		storage.err = errors.New("audit_logs unavailable")
		router := auditRouter(storage, admin, ok)

		req := httptest.NewRequest(http.MethodPost, "/api/superadmin/users", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"suspended"}`, rec.Body.String())
		storage.waitStored(t)
	})

	t.Run("without admin in context nothing is recorded", func(t *testing.T) {
		t.Parallel()

		storage := newFakeAuditStorage()
		recorder := audit.NewRecorder(storage)

		r := chi.NewRouter()
		r.Use(superadmin.Audit(recorder))
		r.Post("/api/superadmin/users", ok)

		req := httptest.NewRequest(http.MethodPost, "/api/superadmin/users", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		storage.expectNoWrite(t)
	})
}
