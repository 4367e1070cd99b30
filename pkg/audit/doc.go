// Package audit records superadmin console actions.
//
// Every successful mutating request through the superadmin API produces an
// Entry describing who did what to which tenant or user. Entries are
// persisted through a Storage implementation; the Recorder decouples that
// write from the request: it runs on a detached goroutine with its own
// timeout, so audit storage being slow or down never affects the admin's
// response. A failed write is logged and dropped rather than retried.
//
// Usage:
//
//	recorder := audit.NewRecorder(store, audit.WithLogger(log))
//
//	recorder.Record(r.Context(), audit.Entry{
//		AdminID:        admin.ID,
//		ActionType:     "POST /api/superadmin/tenants/{id}/suspend",
//		TargetTenantID: uuid.NullUUID{UUID: tenantID, Valid: true},
//	})
package audit
