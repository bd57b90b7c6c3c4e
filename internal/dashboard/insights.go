package dashboard

import (
	"fmt"
	"time"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// InsightType is the visual kind of an insight card.
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightTip     InsightType = "tip"
)

// MaxInsights caps the number of cards returned.
const MaxInsights = 3

const (
	responseRateThreshold = 25
	staleAfterDays        = 7
	upcomingWithinDays    = 3
)

// Insight is a short suggestion card.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Count       int         `json:"count,omitempty"`
}

// InsightInput is everything the rules look at.
type InsightInput struct {
	Stats        Stats
	Applications []types.Application
	Interviews   []types.Interview
	Today        time.Time
}

// insightRule returns an insight and true when it fires.
type insightRule func(in InsightInput) (Insight, bool)

// insightRules are evaluated in order, independently of each other.
var insightRules = []insightRule{
	goodResponseRate,
	staleApplications,
	upcomingInterviews,
}

// GenerateInsights evaluates the rule table against in and keeps the first
// MaxInsights results. A generic tip is returned when no rule fires.
// Day differences are whole UTC calendar days.
func GenerateInsights(in InsightInput) []Insight {
	insights := make([]Insight, 0, MaxInsights)
	for _, rule := range insightRules {
		if len(insights) == MaxInsights {
			break
		}
		if insight, ok := rule(in); ok {
			insights = append(insights, insight)
		}
	}
	if len(insights) == 0 {
		insights = append(insights, defaultTip())
	}
	return insights
}

func goodResponseRate(in InsightInput) (Insight, bool) {
	if in.Stats.ResponseRate <= responseRateThreshold {
		return Insight{}, false
	}
	return Insight{
		Type:        InsightSuccess,
		Title:       "Excellent taux de réponse",
		Description: fmt.Sprintf("Votre taux de réponse de %d%% est au-dessus de la moyenne. Continuez ainsi !", in.Stats.ResponseRate),
	}, true
}

// StaleApplications counts pending applications sent more than a week before today.
func StaleApplications(apps []types.Application, today time.Time) int {
	ref := types.StartOfDay(today)
	count := 0
	for _, app := range apps {
		if app.Status != types.StatusPending {
			continue
		}
		applied, ok := types.ParseDay(app.AppliedDate)
		if !ok {
			continue
		}
		if types.DaysBetween(applied, ref) > staleAfterDays {
			count++
		}
	}
	return count
}

func staleApplications(in InsightInput) (Insight, bool) {
	n := StaleApplications(in.Applications, in.Today)
	if n == 0 {
		return Insight{}, false
	}
	return Insight{
		Type:        InsightWarning,
		Title:       "Relances à prévoir",
		Description: fmt.Sprintf("%d candidature(s) en attente depuis plus de %d jours. Pensez à relancer.", n, staleAfterDays),
		Count:       n,
	}, true
}

// UpcomingInterviews counts interviews between today and three days ahead, both inclusive.
func UpcomingInterviews(interviews []types.Interview, today time.Time) int {
	ref := types.StartOfDay(today)
	count := 0
	for _, iv := range interviews {
		day, ok := types.ParseDay(iv.Date)
		if !ok {
			continue
		}
		if diff := types.DaysBetween(ref, day); diff >= 0 && diff <= upcomingWithinDays {
			count++
		}
	}
	return count
}

func upcomingInterviews(in InsightInput) (Insight, bool) {
	n := UpcomingInterviews(in.Interviews, in.Today)
	if n == 0 {
		return Insight{}, false
	}
	return Insight{
		Type:        InsightTip,
		Title:       "Entretiens à venir",
		Description: fmt.Sprintf("%d entretien(s) dans les %d prochains jours. Préparez-vous !", n, upcomingWithinDays),
		Count:       n,
	}, true
}

func defaultTip() Insight {
	return Insight{
		Type:        InsightTip,
		Title:       "Conseil du jour",
		Description: "Personnalisez chaque lettre de motivation pour l'entreprise visée afin d'augmenter vos chances.",
	}
}
