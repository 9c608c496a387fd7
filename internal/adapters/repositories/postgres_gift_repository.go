package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stylecloset-service/internal/domain"
)

// Postgres-backed implementation of the GiftScheduleRepository port.
type PostgresGiftRepository struct{ DB *sql.DB }

func NewPostgresGiftRepository(db *sql.DB) *PostgresGiftRepository {
	return &PostgresGiftRepository{DB: db}
}

const giftColumns = `id, user_id, recipient, occasion, budget_cents, cadence, next_run_at, active, created_at`

func scanGiftSchedule(row interface{ Scan(...any) error }) (*domain.GiftSchedule, error) {
	var g domain.GiftSchedule
	err := row.Scan(
		&g.ID, &g.UserID, &g.Recipient, &g.Occasion,
		&g.BudgetCents, &g.Cadence, &g.NextRunAt, &g.Active, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *PostgresGiftRepository) ListByUser(ctx context.Context, userID string) ([]*domain.GiftSchedule, error) {
	if s.DB == nil {
		return nil, errors.New("gift repository: DB is nil")
	}

	query := `
	SELECT ` + giftColumns + `
	FROM gift_schedules
	WHERE user_id = $1
	ORDER BY created_at DESC, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list gift schedules: query gift_schedules table: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.GiftSchedule, 0, 8)
	for rows.Next() {
		g, err := scanGiftSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("list gift schedules: scan row: %w", err)
		}
		schedules = append(schedules, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list gift schedules: row iteration: %w", err)
	}

	return schedules, nil
}

func (s *PostgresGiftRepository) Get(ctx context.Context, userID, id string) (*domain.GiftSchedule, error) {
	if s.DB == nil {
		return nil, errors.New("gift repository: DB is nil")
	}

	query := `
	SELECT ` + giftColumns + `
	FROM gift_schedules
	WHERE user_id = $1 AND id = $2;
	`
	g, err := scanGiftSchedule(s.DB.QueryRowContext(ctx, query, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get gift schedule: %w", err)
	}

	return g, nil
}

func (s *PostgresGiftRepository) Create(ctx context.Context, schedule *domain.GiftSchedule) error {
	if s.DB == nil {
		return errors.New("gift repository: DB is nil")
	}

	query := `
	INSERT INTO gift_schedules (` + giftColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := s.DB.ExecContext(ctx, query,
		schedule.ID, schedule.UserID, schedule.Recipient, schedule.Occasion,
		schedule.BudgetCents, schedule.Cadence, schedule.NextRunAt, schedule.Active, schedule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create gift schedule: %w", err)
	}

	return nil
}

func (s *PostgresGiftRepository) Update(ctx context.Context, schedule *domain.GiftSchedule) error {
	if s.DB == nil {
		return errors.New("gift repository: DB is nil")
	}

	query := `
	UPDATE gift_schedules
	SET recipient = $3, occasion = $4, budget_cents = $5, cadence = $6,
		next_run_at = $7, active = $8
	WHERE user_id = $1 AND id = $2;
	`
	res, err := s.DB.ExecContext(ctx, query,
		schedule.UserID, schedule.ID, schedule.Recipient, schedule.Occasion,
		schedule.BudgetCents, schedule.Cadence, schedule.NextRunAt, schedule.Active,
	)
	if err != nil {
		return fmt.Errorf("update gift schedule: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update gift schedule: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("gift schedule %s: %w", schedule.ID, domain.ErrNotFound)
	}

	return nil
}

func (s *PostgresGiftRepository) Delete(ctx context.Context, userID, id string) error {
	if s.DB == nil {
		return errors.New("gift repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM gift_schedules WHERE user_id = $1 AND id = $2;`, userID, id)
	if err != nil {
		return fmt.Errorf("delete gift schedule: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gift schedule: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListDue returns active schedules whose next run is at or before now,
// oldest first so starved schedules catch up before fresh ones.
func (s *PostgresGiftRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.GiftSchedule, error) {
	if s.DB == nil {
		return nil, errors.New("gift repository: DB is nil")
	}

	query := `
	SELECT ` + giftColumns + `
	FROM gift_schedules
	WHERE active AND next_run_at <= $1
	ORDER BY next_run_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list due gift schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.GiftSchedule, 0, 8)
	for rows.Next() {
		g, err := scanGiftSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("list due gift schedules: scan row: %w", err)
		}
		schedules = append(schedules, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list due gift schedules: row iteration: %w", err)
	}

	return schedules, nil
}

func (s *PostgresGiftRepository) Advance(ctx context.Context, id string, nextRunAt time.Time) error {
	if s.DB == nil {
		return errors.New("gift repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE gift_schedules SET next_run_at = $2 WHERE id = $1;`, id, nextRunAt)
	if err != nil {
		return fmt.Errorf("advance gift schedule: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("advance gift schedule: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
