package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/config"
	"github.com/autovista/inspect-api/internal/middleware"
	"github.com/autovista/inspect-api/internal/models"
)

func TestGenerateTokenLifetimes(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        24 * time.Hour,
		RefreshJWTExpiry: 7 * 24 * time.Hour,
	}
	h := &Handler{cfg: cfg}
	user := &models.User{ID: 42, Email: "inspector@example.com", Role: models.RoleUser}

	tests := map[string]struct {
		expiry time.Duration
	}{
		"session token": {expiry: cfg.JWTExpiry},
		"refresh token": {expiry: cfg.RefreshJWTExpiry},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			signed, err := h.generateToken(user, tc.expiry)
			require.NoError(t, err)

			claims := &middleware.JWTClaims{}
			_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			})
			require.NoError(t, err)

			assert.Equal(t, 42, claims.UserID)
			assert.Equal(t, "inspector@example.com", claims.Email)
			assert.Equal(t, models.RoleUser, claims.Role)
			assert.WithinDuration(t, time.Now().Add(tc.expiry), claims.ExpiresAt.Time, time.Minute)
		})
	}
}
