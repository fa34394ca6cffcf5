package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectPostgres opens a pool for dsn, checks it and makes sure the
// schema exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Info().Str("host", config.ConnConfig.Host).Msg("connected to PostgreSQL")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return db, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// SUBMITTED ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			items JSONB NOT NULL,
			total INTEGER NOT NULL CHECK (total >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	sessionIndexSQL := `
		CREATE INDEX IF NOT EXISTS orders_session_id_idx
		ON orders (session_id, created_at DESC)
	`
	if _, err := db.Exec(ctx, sessionIndexSQL); err != nil {
		return err
	}

	log.Info().Msg("schema initialized")
	return nil
}
