package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/config"
	"github.com/autovista/inspect-api/internal/models"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func signTestToken(t *testing.T, secret string, role models.Role, expiry time.Duration) string {
	t.Helper()

	claims := &JWTClaims{
		UserID: 7,
		Email:  "inspector@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthRequired(t *testing.T) {
	tests := map[string]struct {
		authHeader string
		wantStatus int
	}{
		"missing header": {
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		"no bearer prefix": {
			authHeader: "Token abc",
			wantStatus: fiber.StatusUnauthorized,
		},
		"garbage token": {
			authHeader: "Bearer not-a-jwt",
			wantStatus: fiber.StatusUnauthorized,
		},
		"wrong secret": {
			authHeader: "Bearer " + func() string {
				claims := &JWTClaims{UserID: 7, RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}}
				signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
				return signed
			}(),
			wantStatus: fiber.StatusUnauthorized,
		},
		"valid token": {
			wantStatus: fiber.StatusOK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app := fiber.New()
			var gotUserID int
			app.Get("/protected", AuthRequired(testConfig()), func(c *fiber.Ctx) error {
				gotUserID = GetUserID(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			header := tc.authHeader
			if name == "valid token" {
				header = "Bearer " + signTestToken(t, testSecret, models.RoleUser, time.Hour)
			}
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus == fiber.StatusOK {
				assert.Equal(t, 7, gotUserID)
			}
		})
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", AuthRequired(testConfig()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, models.RoleUser, -time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthOptional(t *testing.T) {
	tests := map[string]struct {
		authHeader string
		wantUserID int
		wantEmail  string
	}{
		"anonymous request passes through": {
			authHeader: "",
		},
		"invalid token treated as anonymous": {
			authHeader: "Bearer not-a-jwt",
		},
		"valid token identifies the caller": {
			authHeader: "valid",
			wantUserID: 7,
			wantEmail:  "inspector@example.com",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app := fiber.New()
			var gotUserID int
			var gotEmail string
			app.Get("/public", AuthOptional(testConfig()), func(c *fiber.Ctx) error {
				gotUserID = GetUserID(c)
				gotEmail = GetUserEmail(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/public", nil)
			if tc.authHeader == "valid" {
				req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, models.RoleUser, time.Hour))
			} else if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.wantUserID, gotUserID)
			assert.Equal(t, tc.wantEmail, gotEmail)
		})
	}
}

func TestAdminRequired(t *testing.T) {
	tests := map[string]struct {
		role       models.Role
		anonymous  bool
		wantStatus int
	}{
		"no credentials": {
			anonymous:  true,
			wantStatus: fiber.StatusUnauthorized,
		},
		"regular user forbidden": {
			role:       models.RoleUser,
			wantStatus: fiber.StatusForbidden,
		},
		"admin allowed": {
			role:       models.RoleAdmin,
			wantStatus: fiber.StatusOK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/admin", AuthRequired(testConfig()), AdminRequired(), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if !tc.anonymous {
				req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, tc.role, time.Hour))
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}
