package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"combolunch/internal/menu"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save submitted order
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, order *Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, session_id, items, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.ID, order.SessionID, items, order.Total, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Get one order
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, session_id, items, total, created_at
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Orders submitted from one session, newest first
// --------------------------------------------------
func (r *PostgresRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, items, total, created_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at DESC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		order Order
		items []byte
	)
	if err := row.Scan(&order.ID, &order.SessionID, &items, &order.Total, &order.CreatedAt); err != nil {
		return nil, err
	}

	order.Items = make(map[menu.Category]string)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &order, nil
}
