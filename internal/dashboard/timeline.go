package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// UnknownMonth keys the trailing group of applications without any usable date.
const UnknownMonth = "unknown"

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthGroup is one calendar month of the timeline.
type MonthGroup struct {
	Key          string              `json:"key"`   // YYYY-MM
	Label        string              `json:"label"` // e.g. "janvier 2024"
	Applications []types.Application `json:"applications"`
}

// MonthLabel formats t as a French "month year" label.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
}

// sortDate is the applied date, falling back to the creation timestamp.
func sortDate(app types.Application) (time.Time, bool) {
	if day, ok := types.ParseDay(app.AppliedDate); ok {
		return day, true
	}
	if !app.CreatedAt.IsZero() {
		return app.CreatedAt.UTC(), true
	}
	return time.Time{}, false
}

// SortByDateDesc returns a copy of apps sorted most recent first. The sort is
// stable; undated applications go last.
func SortByDateDesc(apps []types.Application) []types.Application {
	sorted := make([]types.Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sortDate(sorted[i])
		tj, okj := sortDate(sorted[j])
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	return sorted
}

// GroupTimeline sorts apps descending by date and groups them by calendar month.
// Groups come out in the order their first member was met, which is most recent
// month first; they are never re-sorted by key.
func GroupTimeline(apps []types.Application) []MonthGroup {
	sorted := SortByDateDesc(apps)

	groups := make([]MonthGroup, 0)
	index := make(map[string]int)
	for _, app := range sorted {
		key, label := UnknownMonth, "Date inconnue"
		if t, ok := sortDate(app); ok {
			key, label = t.Format("2006-01"), MonthLabel(t)
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Key: key, Label: label})
		}
		groups[i].Applications = append(groups[i].Applications, app)
	}
	return groups
}
