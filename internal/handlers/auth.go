package handlers

import (
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/autovista/inspect-api/internal/database"
	"github.com/autovista/inspect-api/internal/middleware"
	"github.com/autovista/inspect-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Register handles user registration
func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Validate email
	if !emailRegex.MatchString(req.Email) {
		return Error(c, fiber.StatusBadRequest, "invalid email format")
	}

	// Validate password
	if len(req.Password) < 8 {
		return Error(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	// Validate username if provided
	if req.Username != nil {
		if len(*req.Username) < 3 || len(*req.Username) > 50 {
			return Error(c, fiber.StatusBadRequest, "username must be between 3 and 50 characters")
		}
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to process password")
	}

	// Create user
	user, err := h.db.CreateUser(c.Context(), req.Email, string(hashedPassword), req.Username)
	if err != nil {
		if errors.Is(err, database.ErrEmailExists) {
			return Error(c, fiber.StatusConflict, "email already registered")
		}
		if errors.Is(err, database.ErrUsernameExists) {
			return Error(c, fiber.StatusConflict, "username already taken")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to create user")
	}

	// Generate JWT token
	token, err := h.generateToken(user, h.cfg.JWTExpiry)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// Login handles user authentication
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Validate input
	if req.Email == "" || req.Password == "" {
		return Error(c, fiber.StatusBadRequest, "email and password are required")
	}

	// Get user by email
	user, err := h.db.GetUserByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return Error(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, fiber.StatusInternalServerError, "authentication failed")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return Error(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	// Update last login
	h.db.UpdateUserLastLogin(c.Context(), user.ID)

	// Generate JWT token
	token, err := h.generateToken(user, h.cfg.JWTExpiry)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// GetCurrentUser returns the currently authenticated user
func (h *Handler) GetCurrentUser(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.db.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return Error(c, fiber.StatusNotFound, "user not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get user")
	}

	return Success(c, user)
}

// RefreshToken issues a fresh token for a valid authenticated session
func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.db.GetUserByID(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	token, err := h.generateToken(user, h.cfg.JWTExpiry)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to generate token")
	}

	// The long-lived token lets clients re-authenticate after the session
	// token expires without storing credentials
	refreshToken, err := h.generateToken(user, h.cfg.RefreshJWTExpiry)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to generate token")
	}

	return Success(c, fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
	})
}

// generateToken creates a signed JWT for a user with the given lifetime
func (h *Handler) generateToken(user *models.User, expiry time.Duration) (string, error) {
	claims := &middleware.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
