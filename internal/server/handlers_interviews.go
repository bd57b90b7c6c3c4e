package server

import (
	"fmt"
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
)

// handleListInterviews returns the user's interviews in chronological order
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.store.ListInterviews(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des entretiens impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, interviews)
}

// handleCreateInterview schedules an interview for one of the user's applications
func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var form forms.InterviewForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Entretien non planifié", err)
		return
	}

	iv := form.Interview(currentUser(r))
	if err := s.store.CreateInterview(r.Context(), iv); err != nil {
		s.fail(w, r, "Entretien non planifié", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Entretien planifié", "Le "+iv.Date+" à "+iv.Time), iv)
}

// handleGetInterview returns one interview
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Entretien introuvable", err)
		return
	}
	iv, err := s.store.GetInterview(r.Context(), currentUser(r), id)
	if err == nil && iv == nil {
		err = fmt.Errorf("interview %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		s.fail(w, r, "Entretien introuvable", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, iv)
}

// handleUpdateInterview replaces an interview
func (s *Server) handleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Entretien non modifié", err)
		return
	}
	var form forms.InterviewForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Entretien non modifié", err)
		return
	}

	iv := form.Interview(currentUser(r))
	iv.ID = id
	if err := s.store.UpdateInterview(r.Context(), iv); err != nil {
		s.fail(w, r, "Entretien non modifié", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Entretien modifié", "Le "+iv.Date+" à "+iv.Time), iv)
}

// handleDeleteInterview deletes an interview
func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteInterview(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Entretien non supprimé", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Entretien supprimé", ""), nil)
}
