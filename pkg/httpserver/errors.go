package httpserver

import "errors"

var (
	// ErrStart wraps listener failures.
	ErrStart = errors.New("http server start failed")

	// ErrShutdown wraps graceful shutdown failures.
	ErrShutdown = errors.New("http server shutdown failed")
)
