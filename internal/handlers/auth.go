package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/limjemmy/takenote/internal/auth"
	"github.com/limjemmy/takenote/internal/logger"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterHandler(authSvc *auth.Service, jwtSvc *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAuthError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := authSvc.Register(r.Context(), req.Name, req.Email, req.Password)
		if errors.Is(err, auth.ErrMissingFields) {
			writeAuthError(w, http.StatusBadRequest, "Missing fields")
			return
		}
		if err != nil {
			writeAuthError(w, http.StatusInternalServerError, err.Error())
			return
		}

		token, err := jwtSvc.GenerateToken(strconv.FormatInt(user.ID, 10))
		if err != nil {
			writeAuthError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    user,
			"token":   token,
		})
	}
}

func LoginHandler(authSvc *auth.Service, jwtSvc *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAuthError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := authSvc.Login(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			writeAuthError(w, http.StatusBadRequest, "Missing fields")
			return
		case errors.Is(err, auth.ErrUserNotFound):
			writeAuthError(w, http.StatusUnauthorized, "User not found")
			return
		case errors.Is(err, auth.ErrWrongPassword):
			writeAuthError(w, http.StatusUnauthorized, "Wrong password")
			return
		case err != nil:
			writeAuthError(w, http.StatusInternalServerError, err.Error())
			return
		}

		token, err := jwtSvc.GenerateToken(strconv.FormatInt(user.ID, 10))
		if err != nil {
			writeAuthError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    user,
			"token":   token,
		})
	}
}

// GoogleLoginHandler sends the browser to the Google consent page with a
// signed state value.
func GoogleLoginHandler(provider *auth.GoogleProvider, jwtSvc *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := jwtSvc.GenerateState()
		if err != nil {
			http.Error(w, "Failed to start login", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
	}
}

// GoogleCallbackHandler exchanges the authorization code, upserts the
// account, and bounces the browser back to the frontend with the identity
// in the query string. State is verified when present; a bare ?code
// callback is still accepted for compatibility with the original contract.
func GoogleCallbackHandler(authSvc *auth.Service, provider *auth.GoogleProvider, jwtSvc *auth.JWTService, frontendURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code", http.StatusBadRequest)
			return
		}

		if state := r.URL.Query().Get("state"); state != "" {
			if err := jwtSvc.ValidateState(state); err != nil {
				http.Error(w, "Invalid state", http.StatusBadRequest)
				return
			}
		}

		profile, err := provider.Exchange(r.Context(), code)
		if err != nil {
			logger.Error("OAuth exchange failed", zap.Error(err))
			http.Error(w, "OAuth error", http.StatusInternalServerError)
			return
		}

		if err := authSvc.UpsertGoogleUser(r.Context(), profile); err != nil {
			logger.Error("failed to upsert Google account", zap.Error(err))
			http.Error(w, "OAuth error", http.StatusInternalServerError)
			return
		}

		redirect := fmt.Sprintf("%s/?google_id=%s&name=%s&email=%s&picture=%s",
			frontendURL,
			url.QueryEscape(profile.ID),
			url.QueryEscape(profile.Name),
			url.QueryEscape(profile.Email),
			url.QueryEscape(profile.Picture))
		http.Redirect(w, r, redirect, http.StatusFound)
	}
}
