package session_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordidev/recetaskit/pkg/session"
)

func TestCookiePolicy(t *testing.T) {
	t.Parallel()

	policy := session.Policy{TimeoutMinutes: 120}

	t.Run("tunnel topology", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(true, false, policy)
		assert.True(t, attrs.Secure)
		assert.Equal(t, http.SameSiteNoneMode, attrs.SameSite)
		assert.True(t, attrs.Partitioned)
	})

	t.Run("tunnel wins over production flag", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(true, true, policy)
		assert.True(t, attrs.Secure)
		assert.True(t, attrs.Partitioned)
	})

	t.Run("conventional production", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(false, true, policy)
		assert.True(t, attrs.Secure)
		assert.Equal(t, http.SameSiteNoneMode, attrs.SameSite)
		assert.False(t, attrs.Partitioned)
	})

	t.Run("conventional development", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(false, false, policy)
		assert.False(t, attrs.Secure)
		assert.Equal(t, http.SameSiteLaxMode, attrs.SameSite)
		assert.False(t, attrs.Partitioned)
	})

	t.Run("max age equals timeout in seconds", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(false, true, session.Policy{TimeoutMinutes: 45})
		assert.True(t, attrs.HasMaxAge)
		assert.Equal(t, 45*60, attrs.MaxAge)
	})

	t.Run("auto close omits max age", func(t *testing.T) {
		t.Parallel()

		attrs := session.CookiePolicy(false, true, session.Policy{TimeoutMinutes: 45, AutoClose: true})
		assert.False(t, attrs.HasMaxAge)
		assert.Zero(t, attrs.MaxAge)
	})
}
