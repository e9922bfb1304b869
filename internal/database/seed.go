package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default demo user if no users exist, so the history view
// can be tried without going through sign-up first.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, "demo@slidepress.local", string(hash), "Demo")
	if err != nil {
		return fmt.Errorf("seed insert demo user: %w", err)
	}

	slog.Info("database seeded with default demo user",
		"email", "demo@slidepress.local",
		"password", "demo",
	)

	return nil
}
