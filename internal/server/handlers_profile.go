package server

import (
	"fmt"
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
)

// handleGetProfile returns the user's profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	profile, err := s.store.GetProfile(r.Context(), userID)
	if err == nil && profile == nil {
		err = fmt.Errorf("profile %s: %w", userID, db.ErrNotFound)
	}
	if err != nil {
		s.fail(w, r, "Profil introuvable", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile overwrites the user's profile
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var form forms.ProfileForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Profil non modifié", err)
		return
	}

	profile := form.Profile(currentUser(r), s.now())
	if err := s.store.UpdateProfile(r.Context(), profile); err != nil {
		s.fail(w, r, "Profil non modifié", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Profil mis à jour", ""), profile)
}

// handleListExperiences returns the user's work history
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListExperiences(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des expériences impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleCreateExperience adds a work experience
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var form forms.ExperienceForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Expérience non enregistrée", err)
		return
	}

	exp := form.Experience(currentUser(r))
	if err := s.store.CreateExperience(r.Context(), exp); err != nil {
		s.fail(w, r, "Expérience non enregistrée", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Expérience ajoutée", exp.Title+" chez "+exp.Company), exp)
}

// handleUpdateExperience replaces a work experience
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Expérience non modifiée", err)
		return
	}
	var form forms.ExperienceForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Expérience non modifiée", err)
		return
	}

	exp := form.Experience(currentUser(r))
	exp.ID = id
	if err := s.store.UpdateExperience(r.Context(), exp); err != nil {
		s.fail(w, r, "Expérience non modifiée", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Expérience modifiée", exp.Title+" chez "+exp.Company), exp)
}

// handleDeleteExperience deletes a work experience
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteExperience(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Expérience non supprimée", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Expérience supprimée", ""), nil)
}

// handleListSkills returns the user's skills
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des compétences impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

// handleCreateSkill adds a skill
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var form forms.SkillForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Compétence non enregistrée", err)
		return
	}

	skill := form.Skill(currentUser(r))
	if err := s.store.CreateSkill(r.Context(), skill); err != nil {
		s.fail(w, r, "Compétence non enregistrée", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Compétence ajoutée", skill.Name), skill)
}

// handleUpdateSkill replaces a skill
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Compétence non modifiée", err)
		return
	}
	var form forms.SkillForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Compétence non modifiée", err)
		return
	}

	skill := form.Skill(currentUser(r))
	skill.ID = id
	if err := s.store.UpdateSkill(r.Context(), skill); err != nil {
		s.fail(w, r, "Compétence non modifiée", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Compétence modifiée", skill.Name), skill)
}

// handleDeleteSkill deletes a skill
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteSkill(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Compétence non supprimée", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Compétence supprimée", ""), nil)
}

// handleListSocialLinks returns the user's public links
func (s *Server) handleListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.store.ListSocialLinks(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des liens impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, links)
}

// handleCreateSocialLink adds a public link
func (s *Server) handleCreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var form forms.SocialLinkForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Lien non enregistré", err)
		return
	}

	link := form.SocialLink(currentUser(r))
	if err := s.store.CreateSocialLink(r.Context(), link); err != nil {
		s.fail(w, r, "Lien non enregistré", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Lien ajouté", link.Platform), link)
}

// handleDeleteSocialLink deletes a public link
func (s *Server) handleDeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteSocialLink(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Lien non supprimé", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Lien supprimé", ""), nil)
}
