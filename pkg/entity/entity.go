package entity

import "time"

type User struct {
	ID   int
	Name string
	// Password holds a bcrypt hash, never the raw string
	Password string
}

// PublicUser is the credential-free projection handed to clients
type PublicUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID          int        `json:"id"`
	Date        string     `json:"date"`
	UserID      int        `json:"user_id"`
	UserName    string     `json:"user_name"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DayAggregate is a per-(date, user) rollup of task counts. Derived, never stored.
type DayAggregate struct {
	Date      string
	UserID    int
	Total     int
	Completed int
}

type RangeTotals struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	XP        int    `json:"xp"`
}

// ChartRow holds one chart bucket: a "date" label plus
// "<Name>_completed" / "<Name>_total" integer counts per user.
type ChartRow map[string]any

type RangeStats struct {
	ChartData []ChartRow    `json:"chartData"`
	Totals    []RangeTotals `json:"totals"`
	Dates     []string      `json:"dates"`
	Range     string        `json:"range"`
}

type UserStreak struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}
