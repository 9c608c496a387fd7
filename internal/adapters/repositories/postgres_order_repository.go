package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stylecloset-service/internal/domain"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

const orderColumns = `id, user_id, amount_cents, currency, description, status, checkout_session_id, checkout_url, created_at`

func (s *PostgresOrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 16)
	for rows.Next() {
		var o domain.Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.AmountCents, &o.Currency, &o.Description,
			&o.Status, &o.CheckoutSessionID, &o.CheckoutURL, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func (s *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if s.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	query := `
	INSERT INTO orders (` + orderColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := s.DB.ExecContext(ctx, query,
		order.ID, order.UserID, order.AmountCents, order.Currency, order.Description,
		order.Status, order.CheckoutSessionID, order.CheckoutURL, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (s *PostgresOrderRepository) SetCheckout(
	ctx context.Context,
	orderID, sessionID, checkoutURL string,
	status domain.OrderStatus,
) error {
	if s.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	query := `
	UPDATE orders
	SET checkout_session_id = $2, checkout_url = $3, status = $4
	WHERE id = $1;
	`
	res, err := s.DB.ExecContext(ctx, query, orderID, sessionID, checkoutURL, status)
	if err != nil {
		return fmt.Errorf("set order checkout: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set order checkout: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}

	return nil
}

func (s *PostgresOrderRepository) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if s.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1;`, orderID, status)
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set order status: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}

	return nil
}
