package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duoday/daily/internal/service"
	"github.com/duoday/daily/pkg/entity"
)

// testClock pins today to 2025-03-15
func newStreaksService(aggsByUser map[int][]entity.DayAggregate) *service.StreaksService {
	users := &usersRepoMock{}
	users.users = seedUsers("hash")
	repo := newTasksRepoMock()
	repo.aggsByUser = aggsByUser
	return service.NewStreaksServiceWithClock(repo, users, testClock)
}

func full(date string, n int) entity.DayAggregate {
	return entity.DayAggregate{Date: date, Total: n, Completed: n}
}

func TestGetStreaks(t *testing.T) {
	ctx := context.Background()
	t.Run("three fully completed days including today", func(t *testing.T) {
		serv := newStreaksService(map[int][]entity.DayAggregate{
			1: {full("2025-03-15", 2), full("2025-03-14", 1), full("2025-03-13", 3)},
		})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		require.Len(t, streaks, 2)
		assert.Equal(t, entity.UserStreak{ID: 1, Name: "Ali", Streak: 3}, streaks[0])
		assert.Equal(t, 0, streaks[1].Streak)
	})
	t.Run("task-free today starts the walk at yesterday", func(t *testing.T) {
		serv := newStreaksService(map[int][]entity.DayAggregate{
			1: {full("2025-03-14", 1), full("2025-03-13", 2)},
		})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, streaks[0].Streak)
	})
	t.Run("an incomplete day stops the walk", func(t *testing.T) {
		serv := newStreaksService(map[int][]entity.DayAggregate{
			1: {
				full("2025-03-15", 1),
				full("2025-03-14", 2),
				{Date: "2025-03-13", Total: 3, Completed: 2},
				full("2025-03-12", 1),
			},
		})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, streaks[0].Streak)
	})
	t.Run("incomplete today means no streak", func(t *testing.T) {
		serv := newStreaksService(map[int][]entity.DayAggregate{
			1: {{Date: "2025-03-15", Total: 2, Completed: 1}, full("2025-03-14", 1)},
		})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, streaks[0].Streak)
	})
	t.Run("a gap before yesterday ends the streak", func(t *testing.T) {
		serv := newStreaksService(map[int][]entity.DayAggregate{
			1: {full("2025-03-15", 1), full("2025-03-13", 1)},
		})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, streaks[0].Streak)
	})
	t.Run("no tasks at all", func(t *testing.T) {
		serv := newStreaksService(nil)
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, streaks[0].Streak)
		assert.Equal(t, 0, streaks[1].Streak)
	})
	t.Run("long runs are capped at a year", func(t *testing.T) {
		aggs := make([]entity.DayAggregate, 0, 400)
		day := testClock()
		for i := 0; i < 400; i++ {
			aggs = append(aggs, full(day.AddDate(0, 0, -i).Format("2006-01-02"), 1))
		}
		serv := newStreaksService(map[int][]entity.DayAggregate{1: aggs})
		streaks, err := serv.GetStreaks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 365, streaks[0].Streak)
	})
	t.Run("repo error", func(t *testing.T) {
		users := &usersRepoMock{}
		users.users = seedUsers("hash")
		repo := newTasksRepoMock()
		repo.failing = true
		serv := service.NewStreaksServiceWithClock(repo, users, testClock)
		_, err := serv.GetStreaks(ctx)
		assert.Error(t, err)
	})
}
