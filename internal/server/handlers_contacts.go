package server

import (
	"fmt"
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
)

// handleListContacts returns the user's contacts sorted by name
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.store.ListContacts(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des contacts impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, contacts)
}

// handleCreateContact adds a contact
func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var form forms.ContactForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Contact non enregistré", err)
		return
	}

	c := form.Contact(currentUser(r))
	if err := s.store.CreateContact(r.Context(), c); err != nil {
		s.fail(w, r, "Contact non enregistré", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Contact ajouté", c.Name), c)
}

// handleGetContact returns one contact
func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Contact introuvable", err)
		return
	}
	c, err := s.store.GetContact(r.Context(), currentUser(r), id)
	if err == nil && c == nil {
		err = fmt.Errorf("contact %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		s.fail(w, r, "Contact introuvable", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleUpdateContact replaces a contact
func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Contact non modifié", err)
		return
	}
	var form forms.ContactForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Contact non modifié", err)
		return
	}

	c := form.Contact(currentUser(r))
	c.ID = id
	if err := s.store.UpdateContact(r.Context(), c); err != nil {
		s.fail(w, r, "Contact non modifié", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Contact modifié", c.Name), c)
}

// handleDeleteContact deletes a contact
func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteContact(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Contact non supprimé", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Contact supprimé", ""), nil)
}
