package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/duoday/daily/internal/repository"
	"github.com/duoday/daily/pkg/entity"
)

const xpPerTask = 10

var rangeDays = map[string]int{
	"week":    7,
	"month":   30,
	"6months": 180,
}

type StatsService struct {
	tasksRepo repository.TasksRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

func NewStatsService(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI) *StatsService {
	return NewStatsServiceWithClock(tasksRepo, usersRepo, time.Now)
}

func NewStatsServiceWithClock(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI, now func() time.Time) *StatsService {
	if tasksRepo == nil || usersRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		tasksRepo: tasksRepo,
		usersRepo: usersRepo,
		now:       now,
	}
}

func (ss *StatsService) GetRangeStats(ctx context.Context, rangeName string) (*entity.RangeStats, error) {
	days, ok := rangeDays[rangeName]
	if !ok {
		rangeName = "week"
		days = rangeDays[rangeName]
	}
	// Window ends on the current day inclusive
	start := noonUTC(ss.now()).AddDate(0, 0, -(days - 1))

	aggs, err := ss.tasksRepo.AggregateSince(ctx, dayString(start))
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	users, err := ss.usersRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}

	type cell struct {
		date string
		uid  int
	}
	byCell := make(map[cell]entity.DayAggregate, len(aggs))
	for _, a := range aggs {
		byCell[cell{a.Date, a.UserID}] = a
	}

	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, dayString(start.AddDate(0, 0, i)))
	}

	// Every date shows up once, zero-filled when nobody had tasks
	chartData := make([]entity.ChartRow, 0, days)
	for _, date := range dates {
		row := entity.ChartRow{"date": date}
		for _, u := range users {
			agg := byCell[cell{date, u.ID}]
			row[u.Name+"_completed"] = agg.Completed
			row[u.Name+"_total"] = agg.Total
		}
		chartData = append(chartData, row)
	}

	totals := make([]entity.RangeTotals, 0, len(users))
	for _, u := range users {
		t := entity.RangeTotals{ID: u.ID, Name: u.Name}
		for _, a := range aggs {
			if a.UserID != u.ID {
				continue
			}
			t.Completed += a.Completed
			t.Total += a.Total
		}
		t.XP = t.Completed * xpPerTask
		totals = append(totals, t)
	}

	return &entity.RangeStats{
		ChartData: chartData,
		Totals:    totals,
		Dates:     dates,
		Range:     rangeName,
	}, nil
}

func (ss *StatsService) BucketWeekly(rows []entity.ChartRow) []entity.ChartRow {
	if len(rows) == 0 {
		return rows
	}
	buckets := make([]entity.ChartRow, 0, (len(rows)+6)/7)
	for i := 0; i < len(rows); i += 7 {
		chunk := rows[i:min(i+7, len(rows))]
		bucket := entity.ChartRow{"date": chunk[0]["date"]}
		for _, row := range chunk {
			for key, val := range row {
				if key == "date" {
					continue
				}
				n, _ := val.(int)
				sum, _ := bucket[key].(int)
				bucket[key] = sum + n
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
