package core

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status. Encoding failures
// after the header is written cannot be reported to the client; they are
// silently dropped, matching net/http behavior for partial writes.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders an error envelope. A nil error falls back to the
// generic SERVER_ERROR envelope so callers never write an empty body.
func WriteError(w http.ResponseWriter, e *Error) {
	if e == nil {
		e = ErrServer
	}
	JSON(w, e.Status, e.payload())
}
