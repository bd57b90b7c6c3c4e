package server

import (
	"fmt"
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// handleListApplications returns the user's applications, most recent first
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListApplications(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des candidatures impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

// handleCreateApplication records a new application
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var form forms.ApplicationForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Candidature non enregistrée", err)
		return
	}

	app := form.Application(currentUser(r))
	if err := s.store.CreateApplication(r.Context(), app); err != nil {
		s.fail(w, r, "Candidature non enregistrée", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Candidature ajoutée", describeApplication(app)), app)
}

// handleGetApplication returns one application
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Candidature introuvable", err)
		return
	}
	app, err := s.store.GetApplication(r.Context(), currentUser(r), id)
	if err == nil && app == nil {
		err = fmt.Errorf("application %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		s.fail(w, r, "Candidature introuvable", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplication replaces an application
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Candidature non modifiée", err)
		return
	}
	var form forms.ApplicationForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Candidature non modifiée", err)
		return
	}

	app := form.Application(currentUser(r))
	app.ID = id
	if err := s.store.UpdateApplication(r.Context(), app); err != nil {
		s.fail(w, r, "Candidature non modifiée", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Candidature modifiée", describeApplication(app)), app)
}

// handleUpdateApplicationStatus moves an application to another status
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}
	var form forms.StatusForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}

	status := types.ApplicationStatus(form.Status)
	if err := s.store.UpdateApplicationStatus(r.Context(), currentUser(r), id, status); err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Statut mis à jour", "Nouveau statut : "+string(status)),
		map[string]string{"id": id.String(), "status": string(status)})
}

// handleDeleteApplication deletes an application and its interviews
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteApplication(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Candidature non supprimée", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Candidature supprimée", ""), nil)
}

func describeApplication(app *types.Application) string {
	return app.Position + " chez " + app.Company
}
