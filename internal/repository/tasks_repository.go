package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, date string, userID int, text string) (int, error) {
	var id int
	row := tr.conn.QueryRow(ctx, `INSERT INTO daily_tasks (date, user_id, text) VALUES ($1, $2, $3) RETURNING id;`,
		date,
		userID,
		text,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) ListByDate(ctx context.Context, date string) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT t.id, t.date, t.user_id, t.text, t.completed, t.completed_at, t.created_at, u.name
		FROM daily_tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.date = $1
		ORDER BY t.created_at ASC;`, date)
	if err != nil {
		return nil, errors.New("listing tasks by date error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.Date, &t.UserID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UserName)
		if err != nil {
			return nil, errors.New("scanning task row error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tasks: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) SetCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error {
	_, err := tr.conn.Exec(ctx, `UPDATE daily_tasks SET completed = $1, completed_at = $2 WHERE id = $3;`,
		completed,
		completedAt,
		id,
	)
	if err != nil {
		return errors.New("updating task completion error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id int) error {
	_, err := tr.conn.Exec(ctx, `DELETE FROM daily_tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting task error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) AggregateSince(ctx context.Context, startDate string) ([]entity.DayAggregate, error) {
	rows, err := tr.conn.Query(ctx, `SELECT date, user_id, COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM daily_tasks
		WHERE date >= $1
		GROUP BY date, user_id
		ORDER BY date ASC;`, startDate)
	if err != nil {
		return nil, errors.New("aggregating tasks since date error: " + err.Error())
	}
	defer rows.Close()
	return scanAggregates(rows)
}

func (tr *TasksRepository) AggregateByUser(ctx context.Context, userID int) ([]entity.DayAggregate, error) {
	rows, err := tr.conn.Query(ctx, `SELECT date, $1::int, COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM daily_tasks
		WHERE user_id = $1
		GROUP BY date
		ORDER BY date DESC;`, userID)
	if err != nil {
		return nil, errors.New("aggregating tasks by user error: " + err.Error())
	}
	defer rows.Close()
	return scanAggregates(rows)
}

func scanAggregates(rows pgx.Rows) ([]entity.DayAggregate, error) {
	aggs := make([]entity.DayAggregate, 0)
	for rows.Next() {
		var a entity.DayAggregate
		if err := rows.Scan(&a.Date, &a.UserID, &a.Total, &a.Completed); err != nil {
			return nil, errors.New("scanning aggregate row error: " + err.Error())
		}
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning aggregates: " + err.Error())
	}
	return aggs, nil
}
