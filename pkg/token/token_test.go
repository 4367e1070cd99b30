package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordidev/recetaskit/pkg/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestService(t *testing.T) {
	t.Parallel()

	svc, err := token.New(testSecret)
	require.NoError(t, err)

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()

		_, err := token.New("")
		assert.ErrorIs(t, err, token.ErrMissingSecret)
	})

	t.Run("user token round trip", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		signed, err := svc.GenerateUser(userID, "chef", "chef@bistro42.com", time.Hour)
		require.NoError(t, err)

		claims, err := svc.ParseUser(signed)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "chef", claims.Role)
		assert.Equal(t, "chef@bistro42.com", claims.Email)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("admin token round trip", func(t *testing.T) {
		t.Parallel()

		adminID := uuid.New()
		signed, err := svc.GenerateAdmin(adminID, "ops@ordidev.com", time.Hour)
		require.NoError(t, err)

		claims, err := svc.ParseAdmin(signed)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
	})

	t.Run("realms are not interchangeable", func(t *testing.T) {
		t.Parallel()

		userToken, err := svc.GenerateUser(uuid.New(), "chef", "x@y.com", time.Hour)
		require.NoError(t, err)
		_, err = svc.ParseAdmin(userToken)
		assert.ErrorIs(t, err, token.ErrInvalidToken)

		adminToken, err := svc.GenerateAdmin(uuid.New(), "x@y.com", time.Hour)
		require.NoError(t, err)
		_, err = svc.ParseUser(adminToken)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		signed, err := svc.GenerateUser(uuid.New(), "chef", "x@y.com", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ParseUser(signed)
		assert.ErrorIs(t, err, token.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		other, err := token.New("ffffffffffffffffffffffffffffffff")
		require.NoError(t, err)

		signed, err := other.GenerateUser(uuid.New(), "chef", "x@y.com", time.Hour)
		require.NoError(t, err)

		_, err = svc.ParseUser(signed)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ParseUser("not.a.jwt")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
