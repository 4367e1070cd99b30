package tenantdb

import (
	"fmt"
	"net/url"
	"time"
)

// Config describes how per-tenant pools are built. All tenant databases live
// on the same server; only the database name varies, so the registry keeps a
// single credential set and formats a DSN per database.
//
// Every tenant gets its own pool, so the process-wide connection count is
// poolSize x active tenants; the defaults keep pools small. Idle
// connections are reclaimed after MaxConnIdleTime and the pool's periodic
// health check keeps the rest alive.
type Config struct {
	Host     string `env:"TENANT_DB_HOST,required"`
	Port     int    `env:"TENANT_DB_PORT" envDefault:"5432"`
	User     string `env:"TENANT_DB_USER,required"`
	Password string `env:"TENANT_DB_PASSWORD,required"`
	SSLMode  string `env:"TENANT_DB_SSLMODE" envDefault:"prefer"`

	MaxConns          int32         `env:"TENANT_DB_MAX_CONNS" envDefault:"5"`
	MinConns          int32         `env:"TENANT_DB_MIN_CONNS" envDefault:"0"`
	MaxConnIdleTime   time.Duration `env:"TENANT_DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	HealthCheckPeriod time.Duration `env:"TENANT_DB_HEALTHCHECK_PERIOD" envDefault:"1m"`
}

// dsn builds the connection string for one tenant database.
func (c Config) dsn(databaseName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		url.PathEscape(databaseName),
		c.SSLMode,
	)
}
