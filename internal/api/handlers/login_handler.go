// filepath: internal/api/handlers/login_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"navhub/internal/logging"
	"navhub/internal/services/auth"
)

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the session token. The same token is also set as a
// cookie so the homepage picks the session up without any client code.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	token, err := h.Token.Authenticate(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		logging.Log.Errorf("Login: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.Auth.AccessDurationH) * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondWithJSON(w, http.StatusOK, LoginResponse{Token: token})
}
