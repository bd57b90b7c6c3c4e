package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// handleListTasks returns the user's tasks, open ones first
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des tâches impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tasks)
}

// handleCreateTask adds a task
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var form forms.TaskForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Tâche non enregistrée", err)
		return
	}

	task := form.Task(currentUser(r), s.now())
	if err := s.store.CreateTask(r.Context(), task); err != nil {
		s.fail(w, r, "Tâche non enregistrée", err)
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Tâche ajoutée", task.Title), task)
}

// loadTask fetches a task of the current user, mapping absence to db.ErrNotFound.
func (s *Server) loadTask(r *http.Request, id uuid.UUID) (*types.Task, error) {
	task, err := s.store.GetTask(r.Context(), currentUser(r), id)
	if err == nil && task == nil {
		err = fmt.Errorf("task %s: %w", id, db.ErrNotFound)
	}
	return task, err
}

// handleGetTask returns one task
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Tâche introuvable", err)
		return
	}
	task, err := s.loadTask(r, id)
	if err != nil {
		s.fail(w, r, "Tâche introuvable", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, task)
}

// handleUpdateTask replaces a task. A task that stays completed keeps its completion time.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Tâche non modifiée", err)
		return
	}
	var form forms.TaskForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Tâche non modifiée", err)
		return
	}
	existing, err := s.loadTask(r, id)
	if err != nil {
		s.fail(w, r, "Tâche non modifiée", err)
		return
	}

	now := s.now()
	task := form.Task(currentUser(r), now)
	task.ID = existing.ID
	task.CreatedAt = existing.CreatedAt
	task.CompletedAt = existing.CompletedAt
	task.SetStatus(task.Status, now)

	if err := s.store.UpdateTask(r.Context(), task); err != nil {
		s.fail(w, r, "Tâche non modifiée", err)
		return
	}
	s.succeed(w, r, http.StatusOK, notify.Success("Tâche modifiée", task.Title), task)
}

// handleUpdateTaskStatus moves a task to another status
func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}
	var form forms.TaskStatusForm
	if err := s.decode(w, r, &form); err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}
	task, err := s.loadTask(r, id)
	if err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}

	task.SetStatus(types.TaskStatus(form.Status), s.now())
	if err := s.store.UpdateTask(r.Context(), task); err != nil {
		s.fail(w, r, "Statut non modifié", err)
		return
	}

	title := "Tâche mise à jour"
	if task.Completed {
		title = "Tâche terminée"
	}
	s.succeed(w, r, http.StatusOK, notify.Success(title, task.Title), task)
}

// handleDeleteTask deletes a task
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteTask(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Tâche non supprimée", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Tâche supprimée", ""), nil)
}
