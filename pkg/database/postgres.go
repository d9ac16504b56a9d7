package database

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// candidatesSchema bootstraps the single table the service owns. The CHECK
// constraints and the unique email index back up request validation: the
// database is the final authority on uniqueness under concurrent writes.
const candidatesSchema = `
CREATE TABLE IF NOT EXISTS candidates (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	age INTEGER NOT NULL CHECK (age >= 1 AND age <= 150),
	email VARCHAR(100) UNIQUE NOT NULL,
	phone VARCHAR(20),
	skills TEXT,
	experience VARCHAR(50),
	applied_position VARCHAR(100),
	status VARCHAR(50) DEFAULT 'Applied'
		CHECK (status IN ('Applied', 'Interviewing', 'Hired', 'Rejected', 'On Hold')),
	created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates(email);
CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates(status);
`

func NewPostgresConnection(connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	// Works behind transaction-mode poolers (PgBouncer).
	// Prevents "prepared statement already exists" errors.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Database connection established successfully")
	return pool, nil
}

// InitSchema creates the candidates table and its indexes if they are missing.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, candidatesSchema)
	return err
}
