package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duoday/daily/pkg/cleanup"
)

// NewPool opens the shared pgx pool. Repositories receive it explicitly
// instead of each opening their own connection.
func NewPool(cfg DBConfig) PgConnection {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgx pool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgx pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

// InitSchema creates the users and daily_tasks tables when they don't
// exist yet. Task dates are stored as ISO YYYY-MM-DD text, so lexicographic
// comparison and GROUP BY behave like calendar-day operations.
func InitSchema(ctx context.Context, conn PgConnection) error {
	_, err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS users (
		id       SERIAL PRIMARY KEY,
		name     TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`)
	if err != nil {
		return errors.New("creating users table error: " + err.Error())
	}
	_, err = conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS daily_tasks (
		id           SERIAL PRIMARY KEY,
		date         TEXT NOT NULL,
		user_id      INTEGER NOT NULL REFERENCES users(id),
		text         TEXT NOT NULL,
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMPTZ,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`)
	if err != nil {
		return errors.New("creating daily_tasks table error: " + err.Error())
	}
	return nil
}
