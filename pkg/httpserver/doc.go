// Package httpserver wraps net/http with graceful shutdown, signal
// handling, health probes, and stop hooks.
//
// Stop hooks run after in-flight requests have drained, which is where the
// tenant pool registry and the master pool are released:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(context.Context) { registry.CloseAll() }),
//		httpserver.WithStopHook(func(context.Context) { masterPool.Close() }),
//	)
//
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", "error", err)
//	}
//
// Run blocks until the context is cancelled or the process receives an
// interrupt or TERM signal. Listener failures are wrapped with ErrStart,
// shutdown failures with ErrShutdown.
package httpserver
