package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/duoday/daily/pkg/entity"
)

type UsersRepositoryI interface {
	// Inserts user if the name is not taken yet, no-op otherwise.
	// Used for the fixed two-user seed on startup
	CreateIfAbsent(ctx context.Context, user *entity.User) error
	// Looks up user by name. Used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Lists every user, ordered by id
	ListAll(ctx context.Context) ([]entity.PublicUser, error)
}

type TasksRepositoryI interface {
	// Inserts a task for (date, user) and returns its id.
	// date is an ISO YYYY-MM-DD day, text must already be trimmed
	Create(ctx context.Context, date string, userID int, text string) (int, error)
	// Returns all tasks for the given day joined with the owner's name,
	// ordered by creation time ascending
	ListByDate(ctx context.Context, date string) ([]*entity.Task, error)
	// Sets completed and completed_at. completedAt must be non-nil iff
	// completed is true. Unknown ids are a no-op
	SetCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error
	// Removes the task. Idempotent: unknown ids are a no-op
	Delete(ctx context.Context, id int) error
	// Per-(date, user) total/completed counts for all days >= startDate
	AggregateSince(ctx context.Context, startDate string) ([]entity.DayAggregate, error)
	// Per-date total/completed counts for one user over all time,
	// newest date first
	AggregateByUser(ctx context.Context, userID int) ([]entity.DayAggregate, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
