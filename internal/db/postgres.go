package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(log *zap.Logger) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal("invalid DATABASE_URL", zap.Error(err))
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal("postgres pool init failed", zap.Error(err))
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("postgres connection failed", zap.Error(err))
	}

	log.Info("connected to postgres")

	if err := initSchema(pool); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// PLAN SNAPSHOTS
	// -------------------------------
	snapshotTableSQL := `
		CREATE TABLE IF NOT EXISTS plan_snapshots (
			id UUID PRIMARY KEY,
			recipe_name VARCHAR(255) NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, snapshotTableSQL); err != nil {
		return err
	}

	snapshotIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_plan_snapshots_created_at
			ON plan_snapshots (created_at DESC)
	`
	_, err := pool.Exec(ctx, snapshotIndexSQL)
	return err
}
