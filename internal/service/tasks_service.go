package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/internal/repository"
	"github.com/duoday/daily/pkg/entity"
)

type TasksService struct {
	tasksRepo repository.TasksRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI) *TasksService {
	return NewTasksServiceWithClock(tasksRepo, usersRepo, time.Now)
}

func NewTasksServiceWithClock(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI, now func() time.Time) *TasksService {
	if tasksRepo == nil || usersRepo == nil {
		log.Fatal("on tasks service provided nil repos")
	}
	return &TasksService{
		tasksRepo: tasksRepo,
		usersRepo: usersRepo,
		now:       now,
	}
}

func (ts *TasksService) ListForDate(ctx context.Context, date string) ([]*entity.Task, []entity.PublicUser, string, error) {
	day, err := resolveDay(date, ts.now())
	if err != nil {
		return nil, nil, "", err
	}
	tasks, err := ts.tasksRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, nil, "", errors.New("tasks repository error: " + err.Error())
	}
	users, err := ts.usersRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, "", errors.New("users repository error: " + err.Error())
	}
	return tasks, users, day, nil
}

func (ts *TasksService) Create(ctx context.Context, req *CreateTaskRequest) (int, error) {
	err := validate.Struct(*req)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return 0, errorvalues.ErrEmptyText
		}
		return 0, errors.New("validation unexpected error: " + err.Error())
	}
	day, err := resolveDay(req.Date, ts.now())
	if err != nil {
		return 0, err
	}
	id, err := ts.tasksRepo.Create(ctx, day, req.UserID, strings.TrimSpace(req.Text))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("tasks repository error: " + err.Error())
	}
	return id, nil
}

func (ts *TasksService) SetCompletion(ctx context.Context, id int, completed bool) error {
	var completedAt *time.Time
	if completed {
		t := ts.now().UTC()
		completedAt = &t
	}
	err := ts.tasksRepo.SetCompletion(ctx, id, completed, completedAt)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) Delete(ctx context.Context, id int) error {
	err := ts.tasksRepo.Delete(ctx, id)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}
