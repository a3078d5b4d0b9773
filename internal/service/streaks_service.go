package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/duoday/daily/internal/repository"
	"github.com/duoday/daily/pkg/entity"
)

// Bounds the backward walk per user
const maxStreakDays = 365

type StreaksService struct {
	tasksRepo repository.TasksRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

func NewStreaksService(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI) *StreaksService {
	return NewStreaksServiceWithClock(tasksRepo, usersRepo, time.Now)
}

func NewStreaksServiceWithClock(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI, now func() time.Time) *StreaksService {
	if tasksRepo == nil || usersRepo == nil {
		log.Fatal("on streaks service provided nil repos")
	}
	return &StreaksService{
		tasksRepo: tasksRepo,
		usersRepo: usersRepo,
		now:       now,
	}
}

func (ss *StreaksService) GetStreaks(ctx context.Context) ([]entity.UserStreak, error) {
	users, err := ss.usersRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	streaks := make([]entity.UserStreak, 0, len(users))
	for _, u := range users {
		streak, err := ss.userStreak(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		streaks = append(streaks, entity.UserStreak{
			ID:     u.ID,
			Name:   u.Name,
			Streak: streak,
		})
	}
	return streaks, nil
}

// userStreak walks backward one day at a time. A day extends the streak
// only when the user had at least one task and completed all of them.
// A task-free today doesn't break a running streak: the walk then starts
// at yesterday instead.
func (ss *StreaksService) userStreak(ctx context.Context, userID int) (int, error) {
	aggs, err := ss.tasksRepo.AggregateByUser(ctx, userID)
	if err != nil {
		return 0, errors.New("tasks repository error: " + err.Error())
	}
	byDate := make(map[string]entity.DayAggregate, len(aggs))
	for _, a := range aggs {
		byDate[a.Date] = a
	}

	cursor := noonUTC(ss.now())
	if _, ok := byDate[dayString(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		agg, ok := byDate[dayString(cursor)]
		if !ok || agg.Total == 0 || agg.Completed != agg.Total {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}
