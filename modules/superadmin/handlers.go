package superadmin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ordidev/recetaskit/core"
	"github.com/ordidev/recetaskit/pkg/session"
	"github.com/ordidev/recetaskit/pkg/tenant"
)

type handlers struct {
	tenants  TenantDirectory
	cache    tenant.Cache
	settings SettingsStore
	log      *slog.Logger
}

func (h *handlers) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenants.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list tenants failed", "error", err)
		core.WriteError(w, core.ErrServer)
		return
	}
	core.JSON(w, http.StatusOK, map[string]any{"tenants": tenants})
}

func (h *handlers) getTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	core.JSON(w, http.StatusOK, t)
}

func (h *handlers) suspendTenant(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, tenant.StatusSuspended)
}

func (h *handlers) activateTenant(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, tenant.StatusActive)
}

// setStatus transitions the tenant and drops its directory cache entry, so
// the new status applies on the next request instead of after the TTL.
func (h *handlers) setStatus(w http.ResponseWriter, r *http.Request, status tenant.Status) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}

	if err := h.tenants.SetStatus(r.Context(), t.ID, status); err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			core.WriteError(w, tenantNotFound(t.ID))
			return
		}
		h.log.ErrorContext(r.Context(), "tenant status change failed",
			"tenant_id", t.ID, "status", status, "error", err)
		core.WriteError(w, core.ErrServer)
		return
	}

	h.cache.Delete(r.Context(), strings.ToLower(t.Subdomain))

	t.Status = status
	core.JSON(w, http.StatusOK, t)
}

func (h *handlers) loadTenant(w http.ResponseWriter, r *http.Request) (*tenant.Tenant, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tenantID"))
	if err != nil {
		core.WriteError(w, core.NewError(http.StatusNotFound, core.CodeTenantNotFound,
			"Tenant not found", "The tenant id is not valid."))
		return nil, false
	}

	t, err := h.tenants.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			core.WriteError(w, tenantNotFound(id))
			return nil, false
		}
		h.log.ErrorContext(r.Context(), "tenant lookup failed", "tenant_id", id, "error", err)
		core.WriteError(w, core.ErrServer)
		return nil, false
	}
	return t, true
}

func tenantNotFound(id uuid.UUID) *core.Error {
	return core.NewError(http.StatusNotFound, core.CodeTenantNotFound,
		"Tenant not found", "No tenant exists with this id.").
		With("tenant_id", id)
}

type sessionPolicyPayload struct {
	TimeoutMinutes int  `json:"session_timeout_minutes"`
	AutoClose      bool `json:"auto_close"`
}

func (h *handlers) getSessionPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.settings.SessionPolicy(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "session policy read failed", "error", err)
		core.WriteError(w, core.ErrServer)
		return
	}
	core.JSON(w, http.StatusOK, sessionPolicyPayload{
		TimeoutMinutes: policy.TimeoutMinutes,
		AutoClose:      policy.AutoClose,
	})
}

func (h *handlers) updateSessionPolicy(w http.ResponseWriter, r *http.Request) {
	var payload sessionPolicyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TimeoutMinutes <= 0 {
		core.WriteError(w, core.NewError(http.StatusBadRequest, core.CodeServerError,
			"Invalid payload", "session_timeout_minutes must be a positive integer."))
		return
	}

	policy := session.Policy{TimeoutMinutes: payload.TimeoutMinutes, AutoClose: payload.AutoClose}
	if err := h.settings.UpdateSessionPolicy(r.Context(), policy); err != nil {
		h.log.ErrorContext(r.Context(), "session policy update failed", "error", err)
		core.WriteError(w, core.ErrServer)
		return
	}

	core.JSON(w, http.StatusOK, payload)
}
