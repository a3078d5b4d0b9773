package service_test

import (
	"context"
	"errors"
	"time"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/pkg/entity"
)

// Repo mocks shared by the service tests. Each returns canned data and
// records mutating calls so assertions can inspect what reached the store.

var errDB = errors.New("db error")

func seedUsers(passwordHash string) []entity.User {
	return []entity.User{
		{ID: 1, Name: "Ali", Password: passwordHash},
		{ID: 2, Name: "Marwa", Password: passwordHash},
	}
}

type usersRepoMock struct {
	users   []entity.User
	failing bool

	created []*entity.User
}

func (m *usersRepoMock) CreateIfAbsent(ctx context.Context, user *entity.User) error {
	if m.failing {
		return errDB
	}
	m.created = append(m.created, user)
	return nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if m.failing {
		return nil, errDB
	}
	for i := range m.users {
		if m.users[i].Name == name {
			return &m.users[i], nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (m *usersRepoMock) ListAll(ctx context.Context) ([]entity.PublicUser, error) {
	if m.failing {
		return nil, errDB
	}
	public := make([]entity.PublicUser, 0, len(m.users))
	for _, u := range m.users {
		public = append(public, entity.PublicUser{ID: u.ID, Name: u.Name})
	}
	return public, nil
}

type completionCall struct {
	id          int
	completed   bool
	completedAt *time.Time
}

type createCall struct {
	date   string
	userID int
	text   string
}

type tasksRepoMock struct {
	tasks      []*entity.Task
	aggsSince  []entity.DayAggregate
	aggsByUser map[int][]entity.DayAggregate
	failing    bool
	ownerKnown bool

	nextID         int
	createCalls    []createCall
	completions    []completionCall
	deleted        []int
	sinceRequested string
}

func newTasksRepoMock() *tasksRepoMock {
	return &tasksRepoMock{nextID: 1, ownerKnown: true}
}

func (m *tasksRepoMock) Create(ctx context.Context, date string, userID int, text string) (int, error) {
	if m.failing {
		return 0, errDB
	}
	if !m.ownerKnown {
		return 0, errorvalues.ErrUserNotFound
	}
	m.createCalls = append(m.createCalls, createCall{date: date, userID: userID, text: text})
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *tasksRepoMock) ListByDate(ctx context.Context, date string) ([]*entity.Task, error) {
	if m.failing {
		return nil, errDB
	}
	tasks := make([]*entity.Task, 0)
	for _, t := range m.tasks {
		if t.Date == date {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (m *tasksRepoMock) SetCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error {
	if m.failing {
		return errDB
	}
	m.completions = append(m.completions, completionCall{id: id, completed: completed, completedAt: completedAt})
	return nil
}

func (m *tasksRepoMock) Delete(ctx context.Context, id int) error {
	if m.failing {
		return errDB
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *tasksRepoMock) AggregateSince(ctx context.Context, startDate string) ([]entity.DayAggregate, error) {
	if m.failing {
		return nil, errDB
	}
	m.sinceRequested = startDate
	return m.aggsSince, nil
}

func (m *tasksRepoMock) AggregateByUser(ctx context.Context, userID int) ([]entity.DayAggregate, error) {
	if m.failing {
		return nil, errDB
	}
	return m.aggsByUser[userID], nil
}
