package superadmin_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordidev/recetaskit/pkg/superadmin"
	"github.com/ordidev/recetaskit/pkg/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeProvider struct {
	admins      map[uuid.UUID]*superadmin.Admin
	permissions map[string][]string
	lookupErr   error
	permErr     error
}

func (f *fakeProvider) GetByID(ctx context.Context, id uuid.UUID) (*superadmin.Admin, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	admin, ok := f.admins[id]
	if !ok {
		return nil, superadmin.ErrAdminNotFound
	}
	cp := *admin
	return &cp, nil
}

func (f *fakeProvider) GetPermissions(ctx context.Context, role string) ([]string, error) {
	if f.permErr != nil {
		return nil, f.permErr
	}
	return f.permissions[role], nil
}

func okNext(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func adminCookie(t *testing.T, svc *token.Service, id uuid.UUID) *http.Cookie {
	t.Helper()
	signed, err := svc.GenerateAdmin(id, "ops@recetasapi.com", time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: superadmin.CookieName, Value: signed}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	svc, err := token.New(testSecret)
	require.NoError(t, err)

	adminID := uuid.New()
	provider := &fakeProvider{
		admins: map[uuid.UUID]*superadmin.Admin{
			adminID: {ID: adminID, Email: "ops@recetasapi.com", Name: "Ops", Role: "support"},
		},
		permissions: map[string][]string{"support": {"view_tenants"}},
	}

	serve := func(handler http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/tenants", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("no cookie yields 401", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		rec := serve(superadmin.RequireAuth(svc, provider)(next), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_REQUIRED", decodeError(t, rec)["code"])
		assert.False(t, *called)
	})

	t.Run("garbage token yields 401 not 403", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		rec := serve(superadmin.RequireAuth(svc, provider)(next),
			&http.Cookie{Name: superadmin.CookieName, Value: "not-a-token"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec)["code"])
		assert.False(t, *called)
	})

	t.Run("dashboard token is rejected", func(t *testing.T) {
		t.Parallel()

		userToken, err := svc.GenerateUser(uuid.New(), "chef", "chef@bistro42.com", time.Hour)
		require.NoError(t, err)

		next, _ := okNext(t)
		rec := serve(superadmin.RequireAuth(svc, provider)(next),
			&http.Cookie{Name: superadmin.CookieName, Value: userToken})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec)["code"])
	})

	t.Run("valid token for non admin yields 403", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		rec := serve(superadmin.RequireAuth(svc, provider)(next), adminCookie(t, svc, uuid.New()))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "SUPERADMIN_REQUIRED", decodeError(t, rec)["code"])
		assert.False(t, *called)
	})

	t.Run("locked account yields 423", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		until := now.Add(30 * time.Minute)
		lockedID := uuid.New()
		locked := &fakeProvider{
			admins: map[uuid.UUID]*superadmin.Admin{
				lockedID: {ID: lockedID, Role: "support", LockedUntil: &until},
			},
		}

		next, called := okNext(t)
		handler := superadmin.RequireAuth(svc, locked,
			superadmin.WithNow(func() time.Time { return now }))(next)
		rec := serve(handler, adminCookie(t, svc, lockedID))

		assert.Equal(t, http.StatusLocked, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "ACCOUNT_LOCKED", body["code"])
		assert.Contains(t, body, "locked_until")
		assert.False(t, *called)
	})

	t.Run("expired lock admits", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		until := now.Add(-time.Minute)
		unlockedID := uuid.New()
		unlocked := &fakeProvider{
			admins: map[uuid.UUID]*superadmin.Admin{
				unlockedID: {ID: unlockedID, Role: "support", LockedUntil: &until},
			},
		}

		next, called := okNext(t)
		handler := superadmin.RequireAuth(svc, unlocked,
			superadmin.WithNow(func() time.Time { return now }))(next)
		rec := serve(handler, adminCookie(t, svc, unlockedID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("attaches admin with permissions", func(t *testing.T) {
		t.Parallel()

		var got *superadmin.Admin
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = superadmin.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		rec := serve(superadmin.RequireAuth(svc, provider)(next), adminCookie(t, svc, adminID))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, adminID, got.ID)
		assert.Equal(t, []string{"view_tenants"}, got.Permissions)
	})

	t.Run("lookup failure yields 500", func(t *testing.T) {
		t.Parallel()

		broken := &fakeProvider{lookupErr: errors.New("master db down")}
		next, _ := okNext(t)
		rec := serve(superadmin.RequireAuth(svc, broken)(next), adminCookie(t, svc, adminID))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SERVER_ERROR", decodeError(t, rec)["code"])
	})
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	serveAs := func(admin *superadmin.Admin, handler http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/tenants", nil)
		if admin != nil {
			req = req.WithContext(superadmin.WithAdmin(req.Context(), admin))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("without auth yields middleware order error", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		rec := serveAs(nil, superadmin.RequirePermission("manage_tenants")(next))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "MIDDLEWARE_ORDER_ERROR", decodeError(t, rec)["code"])
		assert.False(t, *called)
	})

	t.Run("super admin role bypasses any permission", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		admin := &superadmin.Admin{ID: uuid.New(), Role: superadmin.RoleSuperAdmin}
		rec := serveAs(admin, superadmin.RequirePermission("never_granted_anywhere")(next))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("any of the listed permissions admits", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		admin := &superadmin.Admin{ID: uuid.New(), Role: "support", Permissions: []string{"view_tenants"}}
		rec := serveAs(admin, superadmin.RequirePermission("manage_tenants", "view_tenants")(next))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("missing permission yields 403", func(t *testing.T) {
		t.Parallel()

		next, called := okNext(t)
		admin := &superadmin.Admin{ID: uuid.New(), Role: "support", Permissions: []string{"view_tenants"}}
		rec := serveAs(admin, superadmin.RequirePermission("manage_tenants")(next))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "INSUFFICIENT_PERMISSIONS", decodeError(t, rec)["code"])
		assert.False(t, *called)
	})
}
