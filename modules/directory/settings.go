package directory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/pkg/session"
)

// Setting keys in the platform_settings table.
const (
	settingSessionTimeout   = "session_timeout_minutes"
	settingSessionAutoClose = "session_auto_close"
)

// SettingsStore reads and writes platform-wide settings stored as key/value
// rows in the master database.
type SettingsStore struct {
	pool *pgxpool.Pool
}

// NewSettingsStore creates a store over the master pool.
func NewSettingsStore(pool *pgxpool.Pool) *SettingsStore {
	return &SettingsStore{pool: pool}
}

// SessionPolicy assembles the session policy from settings rows. Missing or
// malformed rows fall back to field defaults so a half-written settings
// table still yields a usable policy.
func (s *SettingsStore) SessionPolicy(ctx context.Context) (session.Policy, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT setting_key, setting_value
		FROM platform_settings
		WHERE setting_key = ANY($1)`,
		[]string{settingSessionTimeout, settingSessionAutoClose})
	if err != nil {
		return session.Policy{}, fmt.Errorf("query session settings: %w", err)
	}
	defer rows.Close()

	policy := session.DefaultPolicy
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return session.Policy{}, fmt.Errorf("scan setting: %w", err)
		}
		switch key {
		case settingSessionTimeout:
			if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
				policy.TimeoutMinutes = minutes
			}
		case settingSessionAutoClose:
			if autoClose, err := strconv.ParseBool(value); err == nil {
				policy.AutoClose = autoClose
			}
		}
	}
	return policy, rows.Err()
}

// UpdateSessionPolicy persists the policy from the console settings page.
func (s *SettingsStore) UpdateSessionPolicy(ctx context.Context, policy session.Policy) error {
	settings := map[string]string{
		settingSessionTimeout:   strconv.Itoa(policy.TimeoutMinutes),
		settingSessionAutoClose: strconv.FormatBool(policy.AutoClose),
	}
	for key, value := range settings {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO platform_settings (setting_key, setting_value)
			VALUES ($1, $2)
			ON CONFLICT (setting_key) DO UPDATE SET setting_value = excluded.setting_value`,
			key, value)
		if err != nil {
			return fmt.Errorf("update setting %s: %w", key, err)
		}
	}
	return nil
}
