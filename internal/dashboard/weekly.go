package dashboard

import (
	"time"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// Level is the coarse activity intensity of a day.
type Level string

const (
	LevelNone     Level = "none"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelIntense  Level = "intense"
)

// WeekDays is the number of buckets in the weekly view.
const WeekDays = 7

// LevelFor maps a day's total activity to its intensity level.
func LevelFor(total int) Level {
	switch {
	case total <= 0:
		return LevelNone
	case total <= 2:
		return LevelLow
	case total <= 4:
		return LevelModerate
	default:
		return LevelIntense
	}
}

// DayActivity is one bucket of the weekly view.
type DayActivity struct {
	Date           string `json:"date"` // YYYY-MM-DD
	Applications   int    `json:"applications"`
	Interviews     int    `json:"interviews"`
	CompletedTasks int    `json:"completed_tasks"`
	Total          int    `json:"total"`
	Level          Level  `json:"level"`
	IsToday        bool   `json:"is_today"`
}

// WeekTotals are the column sums over the seven buckets.
type WeekTotals struct {
	Applications   int `json:"applications"`
	Interviews     int `json:"interviews"`
	CompletedTasks int `json:"completed_tasks"`
	Total          int `json:"total"`
}

// Week is the last seven calendar days, oldest first, ending on today.
type Week struct {
	Days   []DayActivity `json:"days"`
	Totals WeekTotals    `json:"totals"`
}

// WeeklyActivity buckets records into today and the six preceding UTC calendar days.
//
// A record matches a bucket only when its date falls on exactly that day.
// Tasks count only when they are due that day and completed.
func WeeklyActivity(apps []types.Application, interviews []types.Interview, tasks []types.Task, today time.Time) Week {
	todayKey := types.DayKey(today)
	start := types.StartOfDay(today).AddDate(0, 0, -(WeekDays - 1))

	week := Week{Days: make([]DayActivity, WeekDays)}
	index := make(map[string]int, WeekDays)
	for i := range week.Days {
		key := types.DayKey(start.AddDate(0, 0, i))
		week.Days[i] = DayActivity{Date: key, IsToday: key == todayKey}
		index[key] = i
	}

	bucket := func(date string) *DayActivity {
		day, ok := types.ParseDay(date)
		if !ok {
			return nil
		}
		i, ok := index[types.DayKey(day)]
		if !ok {
			return nil
		}
		return &week.Days[i]
	}

	for _, app := range apps {
		if d := bucket(app.AppliedDate); d != nil {
			d.Applications++
		}
	}
	for _, iv := range interviews {
		if d := bucket(iv.Date); d != nil {
			d.Interviews++
		}
	}
	for _, task := range tasks {
		if task.Status != types.TaskCompleted || task.DueDate == nil {
			continue
		}
		if d := bucket(*task.DueDate); d != nil {
			d.CompletedTasks++
		}
	}

	for i := range week.Days {
		d := &week.Days[i]
		d.Total = d.Applications + d.Interviews + d.CompletedTasks
		d.Level = LevelFor(d.Total)

		week.Totals.Applications += d.Applications
		week.Totals.Interviews += d.Interviews
		week.Totals.CompletedTasks += d.CompletedTasks
		week.Totals.Total += d.Total
	}
	return week
}
