// Package dashboard derives the statistics, weekly activity, timeline and
// insights shown on the dashboard from raw record lists.
//
// Every function here is pure: it reads its inputs, allocates a fresh result
// and never fails. Malformed dates degrade to "no match" instead of an error.
package dashboard

import (
	"math"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// Stats is the fixed-shape summary of a user's applications.
type Stats struct {
	Total               int `json:"total"`
	Pending             int `json:"pending"`
	Interview           int `json:"interview"`
	Accepted            int `json:"accepted"`
	Rejected            int `json:"rejected"`
	Active              int `json:"active"`
	InterviewsScheduled int `json:"interviews_scheduled"`
	ResponseRate        int `json:"response_rate"` // percent, 0-100
}

// ComputeStats counts applications per status bucket and derives the response rate.
// Unknown status labels count as pending so the buckets always sum to Total.
func ComputeStats(apps []types.Application, interviews []types.Interview) Stats {
	var s Stats
	s.Total = len(apps)

	for _, app := range apps {
		switch app.Status {
		case types.StatusInterview:
			s.Interview++
		case types.StatusAccepted:
			s.Accepted++
		case types.StatusRejected:
			s.Rejected++
		default:
			s.Pending++
		}
	}
	s.Active = s.Pending + s.Interview

	for _, iv := range interviews {
		if iv.Status != types.InterviewCancelled {
			s.InterviewsScheduled++
		}
	}

	if s.Total > 0 {
		responded := s.Interview + s.Accepted + s.Rejected
		s.ResponseRate = int(math.Round(float64(responded) * 100 / float64(s.Total)))
	}
	return s
}
