package superadmin

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ordidev/recetaskit/pkg/audit"
	"github.com/ordidev/recetaskit/pkg/clientip"
)

// captureLimit caps how much of the request and response bodies is kept for
// the audit trail.
const captureLimit = 64 << 10

// Audit records every successful mutating console request. It wraps the
// response writer to capture status and body; once the handler finishes
// with a status below 400 on a POST/PUT/PATCH/DELETE, the action is handed
// to the recorder, which persists it off the request path. Reads and failed
// requests are not recorded.
func Audit(recorder *audit.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := FromContext(r.Context())
			if !ok || !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			reqBody := drainBody(r)
			cw := &captureWriter{ResponseWriter: w}

			next.ServeHTTP(cw, r)

			if cw.status() >= http.StatusBadRequest {
				return
			}

			tenantID, userID := targets(r, reqBody)
			recorder.Record(r.Context(), audit.Entry{
				AdminID:        admin.ID,
				ActionType:     r.Method + " " + routePattern(r),
				TargetTenantID: tenantID,
				TargetUserID:   userID,
				Details:        details(r, reqBody, cw.body.Bytes()),
				IPAddress:      clientip.GetIP(r),
				UserAgent:      r.UserAgent(),
			})
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// drainBody reads up to captureLimit of the request body and puts it back so
// the handler sees the full body unchanged.
func drainBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	captured, err := io.ReadAll(io.LimitReader(r.Body, captureLimit))
	if err != nil {
		return nil
	}
	rest, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(captured), bytes.NewReader(rest)))
	return captured
}

// targets pulls the acted-on tenant and user ids from the route params,
// falling back to well-known body fields.
func targets(r *http.Request, body []byte) (tenantID, userID uuid.NullUUID) {
	tenantID = parseTarget(chi.URLParam(r, "tenantID"))
	userID = parseTarget(chi.URLParam(r, "userID"))

	if (!tenantID.Valid || !userID.Valid) && len(body) > 0 {
		var fields struct {
			TenantID string `json:"tenant_id"`
			UserID   string `json:"user_id"`
		}
		if err := json.Unmarshal(body, &fields); err == nil {
			if !tenantID.Valid {
				tenantID = parseTarget(fields.TenantID)
			}
			if !userID.Valid {
				userID = parseTarget(fields.UserID)
			}
		}
	}
	return tenantID, userID
}

func parseTarget(s string) uuid.NullUUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

func details(r *http.Request, reqBody, respBody []byte) json.RawMessage {
	payload := map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if q := r.URL.RawQuery; q != "" {
		payload["query"] = q
	}
	if len(reqBody) > 0 {
		payload["body"] = rawOrString(reqBody)
	}
	if len(respBody) > 0 {
		payload["response"] = rawOrString(respBody)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return raw
}

// rawOrString embeds valid JSON as-is and anything else as a string.
func rawOrString(b []byte) any {
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	return string(b)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// captureWriter records the status code and up to captureLimit of the body
// while passing everything through to the client untouched.
type captureWriter struct {
	http.ResponseWriter
	code int
	body bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	if room := captureLimit - w.body.Len(); room > 0 {
		if len(b) <= room {
			w.body.Write(b)
		} else {
			w.body.Write(b[:room])
		}
	}
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}
