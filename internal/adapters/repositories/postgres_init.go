package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"stylecloset-service/internal/auth"
	"stylecloset-service/internal/domain"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createClosetItemsQuery := `
	CREATE TABLE IF NOT EXISTS closet_items (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`

	createClosetIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_closet_items_user
	ON closet_items(user_id);
	`

	createGiftSchedulesQuery := `
	CREATE TABLE IF NOT EXISTS gift_schedules (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		recipient TEXT NOT NULL,
		occasion TEXT NOT NULL DEFAULT '',
		budget_cents INTEGER NOT NULL,
		cadence TEXT NOT NULL,
		next_run_at TIMESTAMPTZ NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createGiftDueIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_gift_schedules_due
	ON gift_schedules(next_run_at) WHERE active;
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount_cents INTEGER NOT NULL,
		currency TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		checkout_session_id TEXT NOT NULL DEFAULT '',
		checkout_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	`

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	statements := []string{
		createClosetItemsQuery,
		createClosetIndexQuery,
		createGiftSchedulesQuery,
		createGiftDueIndexQuery,
		createOrdersQuery,
		createGeocodeCacheQuery,
		createUsersQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// newDemoUser builds a user row with a freshly bcrypt-hashed password.
func newDemoUser(email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.User{}, fmt.Errorf("demo user: email cannot be empty")
	}
	if len(password) < 8 {
		return domain.User{}, fmt.Errorf("demo user: password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("demo user: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("demo user: %w", err)
	}
	return user, nil
}

// SeedDemoUser inserts a demo account for local runs. An existing row
// with the same email is left untouched so reseeding keeps the original
// credentials.
func SeedDemoUser(db *sql.DB, email, password string) error {
	if db == nil {
		return errors.New("seed user: DB is nil")
	}

	user, err := newDemoUser(email, password)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	query := `
	INSERT INTO users (id, email, password_hash, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (email) DO NOTHING;
	`
	if _, err := db.Exec(query, user.ID, user.Email, user.PasswordHash, user.CreatedAt); err != nil {
		return fmt.Errorf("seed user %q: %w", user.Email, err)
	}

	return nil
}

type ClosetItemSeed struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
	ImageURL string `json:"image_url"`
}

// Populate the database with closet items from a JSON file for local
// runs and demos.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed closet: read %q: %w", jsonPath, err)
	}

	var data []ClosetItemSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed closet: parse json: %w", err)
	}

	rows := make([]domain.ClosetItem, 0, len(data))
	now := time.Now().UTC()
	for i, item := range data {
		userID := strings.TrimSpace(item.UserID)
		if userID == "" {
			return fmt.Errorf("seed closet: item at index %d: user_id cannot be empty", i+1)
		}

		row := domain.ClosetItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      strings.TrimSpace(item.Name),
			Category:  strings.TrimSpace(item.Category),
			Color:     item.Color,
			Brand:     item.Brand,
			ImageURL:  item.ImageURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("seed closet: item at index %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed closet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO closet_items (
		id, user_id, name, category, color, brand, image_url, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed closet: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range rows {
		if _, err := stmt.Exec(
			it.ID, it.UserID, it.Name, it.Category,
			it.Color, it.Brand, it.ImageURL, it.CreatedAt, it.UpdatedAt,
		); err != nil {
			return fmt.Errorf("seed closet: insert item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed closet: commit tx: %w", err)
	}

	return nil
}
