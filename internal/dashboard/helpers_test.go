package dashboard

import (
	"time"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

var refToday = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func daysAgo(n int) string {
	return types.DayKey(refToday.AddDate(0, 0, -n))
}

func app(status types.ApplicationStatus, applied string) types.Application {
	return types.Application{Company: "Acme", Position: "Dev", Status: status, AppliedDate: applied}
}

func interview(date string, status types.InterviewStatus) types.Interview {
	return types.Interview{Date: date, Time: "10:00", Status: status}
}

func task(status types.TaskStatus, due string) types.Task {
	t := types.Task{Title: "Relancer", Status: status}
	if due != "" {
		t.DueDate = &due
	}
	return t
}
