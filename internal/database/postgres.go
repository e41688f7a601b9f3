package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homekeep/api/internal/config"
)

// Database wraps the pgx connection pool.
type Database struct {
	Pool *pgxpool.Pool
}

// NewPostgresPool opens a pgx connection pool against the configured
// Postgres instance and verifies it with a ping before returning.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = int32(cfg.PoolMin)
	poolConfig.MaxConns = int32(cfg.PoolMax)
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Second
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Pool: pool}, nil
}

// Collections are the document tables the application works with. Each table
// holds one JSON document per row; all relationships live inside the
// documents as denormalized foreign-key fields.
var Collections = []string{"houses", "systems", "incidents", "contacts", "parkings", "vehicles"}

// collectionSchema is applied per collection table. The expression indexes
// back the equality filters the read paths rely on.
const collectionSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
    id         TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_house_id ON %[1]s ((doc->>'houseId'));
`

const systemIndex = `CREATE INDEX IF NOT EXISTS idx_incidents_system_id ON incidents ((doc->>'systemId'));`

const houseIDsIndex = `CREATE INDEX IF NOT EXISTS idx_contacts_house_ids ON contacts USING GIN ((doc->'houseIds'));`

// InitSchema creates the collection tables and their indexes if they do not
// exist yet. It is safe to run on every startup.
func (db *Database) InitSchema(ctx context.Context) error {
	for _, collection := range Collections {
		if _, err := db.Pool.Exec(ctx, fmt.Sprintf(collectionSchema, collection)); err != nil {
			return fmt.Errorf("failed to create collection table %s: %w", collection, err)
		}
	}
	if _, err := db.Pool.Exec(ctx, systemIndex); err != nil {
		return fmt.Errorf("failed to create incident system index: %w", err)
	}
	if _, err := db.Pool.Exec(ctx, houseIDsIndex); err != nil {
		return fmt.Errorf("failed to create contact house index: %w", err)
	}
	return nil
}

// Ping checks if the database connection is alive.
// It returns an error if the connection is not available.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close gracefully closes the database connection pool.
// It waits for all connections to be returned to the pool before closing.
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Stats returns statistics about the connection pool.
// This is useful for monitoring and debugging.
func (db *Database) Stats() *pgxpool.Stat {
	if db.Pool == nil {
		return nil
	}
	return db.Pool.Stat()
}
