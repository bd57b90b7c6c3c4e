package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		total int
		want  Level
	}{
		{0, LevelNone},
		{1, LevelLow},
		{2, LevelLow},
		{3, LevelModerate},
		{4, LevelModerate},
		{5, LevelIntense},
		{12, LevelIntense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.total), "total=%d", tt.total)
	}
}

func TestWeeklyActivity_BucketShape(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		today := refToday.AddDate(0, 0, offset)
		week := WeeklyActivity(nil, nil, nil, today)

		require.Len(t, week.Days, WeekDays)
		todays := 0
		for i, d := range week.Days {
			if d.IsToday {
				todays++
			}
			if i > 0 {
				assert.Less(t, week.Days[i-1].Date, d.Date, "dates must increase")
			}
			assert.Equal(t, LevelNone, d.Level)
		}
		assert.Equal(t, 1, todays)
		assert.True(t, week.Days[WeekDays-1].IsToday)
		assert.Equal(t, types.DayKey(today), week.Days[WeekDays-1].Date)
		assert.Equal(t, types.DayKey(today.AddDate(0, 0, -6)), week.Days[0].Date)
	}
}

func TestWeeklyActivity_Counts(t *testing.T) {
	apps := []types.Application{
		app(types.StatusPending, daysAgo(0)),
		app(types.StatusPending, daysAgo(0)),
		app(types.StatusPending, daysAgo(3)),
		app(types.StatusPending, daysAgo(7)), // outside the window
		app(types.StatusPending, ""),
		app(types.StatusPending, "31/12/2023"),
	}
	interviews := []types.Interview{
		interview(daysAgo(0), types.InterviewConfirmed),
		interview(daysAgo(6), types.InterviewToConfirm),
		interview("bad", types.InterviewConfirmed),
	}
	tasks := []types.Task{
		task(types.TaskCompleted, daysAgo(0)),
		task(types.TaskCompleted, daysAgo(0)),
		task(types.TaskTodo, daysAgo(0)), // not completed
		task(types.TaskCompleted, ""),    // no due date
	}

	week := WeeklyActivity(apps, interviews, tasks, refToday)

	today := week.Days[6]
	assert.Equal(t, 2, today.Applications)
	assert.Equal(t, 1, today.Interviews)
	assert.Equal(t, 2, today.CompletedTasks)
	assert.Equal(t, 5, today.Total)
	assert.Equal(t, LevelIntense, today.Level)

	assert.Equal(t, 1, week.Days[3].Applications)
	assert.Equal(t, LevelLow, week.Days[3].Level)
	assert.Equal(t, 1, week.Days[0].Interviews)

	assert.Equal(t, WeekTotals{Applications: 3, Interviews: 2, CompletedTasks: 2, Total: 7}, week.Totals)
}

func TestWeeklyActivity_ApplicationSumMatchesWindow(t *testing.T) {
	var apps []types.Application
	inWindow := 0
	for n := -3; n < 15; n++ {
		apps = append(apps, app(types.StatusPending, daysAgo(n)))
		if n >= 0 && n <= 6 {
			inWindow++
		}
	}

	week := WeeklyActivity(apps, nil, nil, refToday)

	sum := 0
	for _, d := range week.Days {
		sum += d.Applications
	}
	assert.Equal(t, inWindow, sum)
	assert.Equal(t, inWindow, week.Totals.Applications)
}

func TestWeeklyActivity_TimestampDates(t *testing.T) {
	apps := []types.Application{app(types.StatusPending, refToday.Format(time.RFC3339))}
	week := WeeklyActivity(apps, nil, nil, refToday)
	assert.Equal(t, 1, week.Days[6].Applications)
}
