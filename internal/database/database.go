package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/autovista/inspect-api/internal/config"
)

// DB wraps the connection pool
type DB struct {
	Pool *pgxpool.Pool
}

// Connect creates a new database connection pool
func Connect(databaseURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	// Configure pool
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	log.Println("Database connected successfully")
	return &DB{Pool: pool}, nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	db.Pool.Close()
}

// RunMigrations runs all database migrations
func RunMigrations(db *DB) error {
	ctx := context.Background()

	// Create migrations table if it doesn't exist
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Run each migration in order
	for version := 1; version <= len(migrations); version++ {
		migration := migrations[version]

		// Check if migration already applied
		var exists bool
		err := db.Pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
			version,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", version, err)
		}

		if exists {
			continue
		}

		// Apply migration
		log.Printf("Applying migration %d...", version)
		_, err = db.Pool.Exec(ctx, migration)
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", version, err)
		}

		// Record migration
		_, err = db.Pool.Exec(ctx,
			"INSERT INTO schema_migrations (version) VALUES ($1)",
			version,
		)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", version, err)
		}

		log.Printf("Migration %d applied successfully", version)
	}

	return nil
}

// EnsureAdminUser creates the admin user if it doesn't exist
func EnsureAdminUser(db *DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	ctx := context.Background()

	// An existing account under the admin email is promoted rather than
	// tripping the unique constraint
	user, err := db.GetUserByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		if user.IsAdmin() {
			log.Println("Admin user already exists")
			return nil
		}
		_, err = db.Pool.Exec(ctx,
			"UPDATE users SET role = 'admin', updated_at = NOW() WHERE id = $1", user.ID)
		if err != nil {
			return fmt.Errorf("failed to promote admin user: %w", err)
		}
		log.Printf("Existing user promoted to admin: %s", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	// Create admin user
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, username, role)
		VALUES ($1, $2, 'admin', 'admin')
	`, cfg.AdminEmail, string(hashedPassword))
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", cfg.AdminEmail)
	return nil
}

// migrations is an ordered map of migration version to SQL
var migrations = map[int]string{
	1: migration001,
	2: migration002,
}

const migration001 = `
-- Enable extensions
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

-- Users table
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    username VARCHAR(50) UNIQUE,
    role VARCHAR(20) DEFAULT 'user',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    last_login_at TIMESTAMP
);
`

const migration002 = `
-- Inspections table. The working state (vehicle info + per-item evaluations)
-- is stored as the plain nested document the application works with, so a
-- record saved under an older checklist still loads: unknown items are
-- dropped and missing ones defaulted at load time.
CREATE TABLE IF NOT EXISTS inspections (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id INT REFERENCES users(id) ON DELETE CASCADE,
    status VARCHAR(20) NOT NULL DEFAULT 'draft',
    vehicle_info JSONB NOT NULL DEFAULT '{}',
    items JSONB NOT NULL DEFAULT '{}',
    metrics JSONB,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    completed_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_inspections_user_id ON inspections(user_id);
CREATE INDEX IF NOT EXISTS idx_inspections_status ON inspections(status);
CREATE INDEX IF NOT EXISTS idx_inspections_updated_at ON inspections(updated_at DESC);
`
