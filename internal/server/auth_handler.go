package server

import (
	"net/http"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	server      *Server
}

// NewAuthHandler creates a new AuthHandler. Responses and notices go through s.
func NewAuthHandler(userService *UserService, jwtService *JWTService, s *Server) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		server:      s,
	}
}

// Register creates an account and opens a session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := h.server.decode(w, r, &req); err != nil {
		h.server.fail(w, r, "Inscription impossible", err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.server.fail(w, r, "Inscription impossible", err)
		return
	}
	h.respondWithSession(w, r, http.StatusCreated, user,
		notify.Success("Compte créé", "Bienvenue "+user.FirstName+" !"))
}

// Login opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := h.server.decode(w, r, &req); err != nil {
		h.server.fail(w, r, "Connexion impossible", err)
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.server.fail(w, r, "Connexion impossible", err)
		return
	}
	h.respondWithSession(w, r, http.StatusOK, user,
		notify.Success("Connexion réussie", "Bon retour "+user.FirstName+" !"))
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, r *http.Request, status int, user *types.User, notice notify.Notice) {
	token, expiresAt, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		h.server.fail(w, r, "Connexion impossible", err)
		return
	}
	h.server.notifier.Notify(r.Context(), user.ID, notice)
	h.server.jsonResponse(w, status, types.LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Me(r.Context(), currentUser(r))
	if err != nil {
		h.server.fail(w, r, "Compte introuvable", err)
		return
	}
	h.server.jsonResponse(w, http.StatusOK, user)
}

// UpdatePassword changes the password of the authenticated account.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req types.UpdatePasswordRequest
	if err := h.server.decode(w, r, &req); err != nil {
		h.server.fail(w, r, "Mot de passe non modifié", err)
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), currentUser(r), req.CurrentPassword, req.NewPassword); err != nil {
		h.server.fail(w, r, "Mot de passe non modifié", err)
		return
	}
	h.server.succeed(w, r, http.StatusOK, notify.Success("Mot de passe modifié", "Votre mot de passe a été mis à jour"),
		map[string]string{"message": "Mot de passe mis à jour"})
}

// DeleteAccount removes the authenticated account and everything it owns.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req types.DeleteAccountRequest
	if err := h.server.decode(w, r, &req); err != nil {
		h.server.fail(w, r, "Suppression du compte impossible", err)
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), currentUser(r), req.Password); err != nil {
		h.server.fail(w, r, "Suppression du compte impossible", err)
		return
	}
	h.server.succeed(w, r, http.StatusNoContent, notify.Success("Compte supprimé", "Toutes vos données ont été effacées"), nil)
}
