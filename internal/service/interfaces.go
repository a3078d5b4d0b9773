package service

import (
	"context"

	"github.com/duoday/daily/pkg/entity"
)

type SeedCredential struct {
	Name     string
	Password string
}

type CreateTaskRequest struct {
	UserID int
	Text   string `validate:"required,notblank,max=500"`
	// Date is an optional ISO YYYY-MM-DD day, empty means today
	Date string
}

type UserServiceI interface {
	// Compares given credentials against the stored bcrypt hash. One generic
	// error for unknown name and wrong password, so neither case leaks
	Authenticate(ctx context.Context, name, password string) (*entity.PublicUser, error)
	ListUsers(ctx context.Context) ([]entity.PublicUser, error)
	// Hashes each password and inserts the user unless the name exists already
	SeedUsers(ctx context.Context, creds []SeedCredential) error
}

type TasksServiceI interface {
	// Returns the day's tasks (owner name joined, oldest first), all users
	// and the resolved date. Empty date means the current day
	ListForDate(ctx context.Context, date string) ([]*entity.Task, []entity.PublicUser, string, error)
	// Validates and trims the text, then inserts the task. Returns its id
	Create(ctx context.Context, req *CreateTaskRequest) (int, error)
	// Marks the task (in)complete, stamping or clearing completed_at.
	// The caller is trusted: no ownership check happens here
	SetCompletion(ctx context.Context, id int, completed bool) error
	// Removes the task. Unknown ids are a no-op
	Delete(ctx context.Context, id int) error
}

type StatsServiceI interface {
	// Aggregates completed/total counts per day and user over the named
	// range, zero-filling days without tasks. Unknown names fall back to week
	GetRangeStats(ctx context.Context, rangeName string) (*entity.RangeStats, error)
	// Sums chart rows into 7-day buckets labelled by their first date.
	// A trailing partial chunk stays as its own bucket
	BucketWeekly(rows []entity.ChartRow) []entity.ChartRow
}

type StreaksServiceI interface {
	// Current streak per user: consecutive fully-completed days walking
	// backward from today (or yesterday when today has no tasks yet)
	GetStreaks(ctx context.Context) ([]entity.UserStreak, error)
}
