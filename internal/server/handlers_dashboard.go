package server

import (
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
)

// handleDashboard returns the statistics, weekly activity, timeline and insights of the user
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loader.Load(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement du tableau de bord impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, dashboard.Build(snap, s.now()))
}
