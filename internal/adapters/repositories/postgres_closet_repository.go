package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stylecloset-service/internal/domain"
)

// Postgres-backed implementation of the ClosetRepository port.
type PostgresClosetRepository struct{ DB *sql.DB }

func NewPostgresClosetRepository(db *sql.DB) *PostgresClosetRepository {
	return &PostgresClosetRepository{DB: db}
}

const closetColumns = `id, user_id, name, category, color, brand, image_url, created_at, updated_at`

func scanClosetItem(row interface{ Scan(...any) error }) (*domain.ClosetItem, error) {
	var it domain.ClosetItem
	err := row.Scan(
		&it.ID, &it.UserID, &it.Name, &it.Category,
		&it.Color, &it.Brand, &it.ImageURL, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Return all closet items owned by a user, newest first.
func (s *PostgresClosetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ClosetItem, error) {
	if s.DB == nil {
		return nil, errors.New("closet repository: DB is nil")
	}

	query := `
	SELECT ` + closetColumns + `
	FROM closet_items
	WHERE user_id = $1
	ORDER BY created_at DESC, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list closet items: query closet_items table: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ClosetItem, 0, 32)
	for rows.Next() {
		it, err := scanClosetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list closet items: scan row: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list closet items: row iteration: %w", err)
	}

	return items, nil
}

func (s *PostgresClosetRepository) Get(ctx context.Context, userID, id string) (*domain.ClosetItem, error) {
	if s.DB == nil {
		return nil, errors.New("closet repository: DB is nil")
	}

	query := `
	SELECT ` + closetColumns + `
	FROM closet_items
	WHERE user_id = $1 AND id = $2;
	`
	it, err := scanClosetItem(s.DB.QueryRowContext(ctx, query, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("closet item %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get closet item: %w", err)
	}

	return it, nil
}

func (s *PostgresClosetRepository) Create(ctx context.Context, item *domain.ClosetItem) error {
	if s.DB == nil {
		return errors.New("closet repository: DB is nil")
	}

	query := `
	INSERT INTO closet_items (` + closetColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := s.DB.ExecContext(ctx, query,
		item.ID, item.UserID, item.Name, item.Category,
		item.Color, item.Brand, item.ImageURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create closet item: %w", err)
	}

	return nil
}

func (s *PostgresClosetRepository) Update(ctx context.Context, item *domain.ClosetItem) error {
	if s.DB == nil {
		return errors.New("closet repository: DB is nil")
	}

	query := `
	UPDATE closet_items
	SET name = $3, category = $4, color = $5, brand = $6, image_url = $7, updated_at = $8
	WHERE user_id = $1 AND id = $2;
	`
	res, err := s.DB.ExecContext(ctx, query,
		item.UserID, item.ID, item.Name, item.Category,
		item.Color, item.Brand, item.ImageURL, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update closet item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update closet item: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("closet item %s: %w", item.ID, domain.ErrNotFound)
	}

	return nil
}

func (s *PostgresClosetRepository) Delete(ctx context.Context, userID, id string) error {
	if s.DB == nil {
		return errors.New("closet repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM closet_items WHERE user_id = $1 AND id = $2;`, userID, id)
	if err != nil {
		return fmt.Errorf("delete closet item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete closet item: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("closet item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
