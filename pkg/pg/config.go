package pg

import "time"

// Config describes the master-database connection. The master database holds
// the tenant directory, platform users, superadmin accounts, settings, and
// audit logs; per-tenant databases are managed by pkg/tenantdb.
type Config struct {
	ConnectionString  string        `env:"MASTER_DB_URL,required"`
	MaxOpenConns      int32         `env:"MASTER_DB_MAX_OPEN_CONNS" envDefault:"10"`
	MinIdleConns      int32         `env:"MASTER_DB_MIN_IDLE_CONNS" envDefault:"2"`
	HealthCheckPeriod time.Duration `env:"MASTER_DB_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"MASTER_DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"MASTER_DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"MASTER_DB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"MASTER_DB_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsTable string `env:"MASTER_DB_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
