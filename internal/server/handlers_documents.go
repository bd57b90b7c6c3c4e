package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/uploads"
)

// multipartOverhead is the room left for form fields and boundaries around the file.
const multipartOverhead = 64 << 10

// handleListDocuments returns the metadata of the user's documents
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListDocuments(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, "Chargement des documents impossible", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, docs)
}

// handleUploadDocument stores a multipart "file" part with its name, type and
// description fields. Size and type are checked before anything is written.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	const title = "Document non téléversé"

	if s.uploads.MaxSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.uploads.MaxSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, title, &uploads.FileTooLargeError{Size: r.ContentLength, Max: s.uploads.MaxSize})
			return
		}
		s.fail(w, r, title, &ErrBadRequest{Message: "Formulaire de téléversement invalide"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, title, &ErrBadRequest{Message: "Aucun fichier reçu"})
		return
	}
	defer file.Close()

	form := forms.DocumentForm{
		Name: r.FormValue("name"),
		Type: r.FormValue("type"),
	}
	if form.Name == "" {
		form.Name = header.Filename
	}
	if desc := r.FormValue("description"); desc != "" {
		form.Description = &desc
	}
	if err := s.forms.Validate(&form); err != nil {
		s.fail(w, r, title, err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, r, title, &uploads.UploadFailedError{Name: form.Name, Err: err})
		return
	}
	mimeType, err := s.uploads.Check(int64(len(content)), content)
	if err != nil {
		s.fail(w, r, title, err)
		return
	}

	doc := form.Document(currentUser(r), mimeType, int64(len(content)))
	if err := s.store.CreateDocument(r.Context(), doc, content); err != nil {
		s.fail(w, r, title, &uploads.UploadFailedError{Name: form.Name, Err: err})
		return
	}
	s.succeed(w, r, http.StatusCreated, notify.Success("Document téléversé", doc.Name), doc)
}

// handleDownloadDocument streams a stored document back to its owner
func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, "Document introuvable", err)
		return
	}
	doc, content, err := s.store.GetDocumentContent(r.Context(), currentUser(r), id)
	if err == nil && doc == nil {
		err = fmt.Errorf("document %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		s.fail(w, r, "Document introuvable", err)
		return
	}

	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Name}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("[server] error writing document %s: %v", id, err)
	}
}

// handleDeleteDocument deletes a document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = s.store.DeleteDocument(r.Context(), currentUser(r), id)
	}
	if err != nil {
		s.fail(w, r, "Document non supprimé", err)
		return
	}
	s.succeed(w, r, http.StatusNoContent, notify.Success("Document supprimé", ""), nil)
}
