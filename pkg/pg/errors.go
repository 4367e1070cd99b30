package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOpenConnection    = errors.New("pg: failed to open master database connection")
	ErrParseConfig       = errors.New("pg: failed to parse connection config")
	ErrHealthcheckFailed = errors.New("pg: healthcheck failed")
	ErrApplyMigrations   = errors.New("pg: failed to apply migrations")
)

// IsNotFound reports whether err is pgx.ErrNoRows, the "zero rows" signal
// every store in modules/directory translates into its own sentinel.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKey reports a unique-constraint violation (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
