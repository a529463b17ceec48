package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/limjemmy/takenote/internal/auth"
	"github.com/limjemmy/takenote/internal/notes"
)

// NewRouter mounts the API under /api and serves the client from webDir
// at everything else. webDir may be empty (tests).
func NewRouter(authSvc *auth.Service, notesSvc *notes.Service, provider *auth.GoogleProvider, jwtSvc *auth.JWTService, frontendURL, webDir string) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", RegisterHandler(authSvc, jwtSvc)).Methods("POST")
	api.HandleFunc("/auth/login", LoginHandler(authSvc, jwtSvc)).Methods("POST")
	api.HandleFunc("/login", GoogleLoginHandler(provider, jwtSvc)).Methods("GET")
	api.HandleFunc("/oauth/callback", GoogleCallbackHandler(authSvc, provider, jwtSvc, frontendURL)).Methods("GET")

	api.HandleFunc("/notes", ListNotesHandler(notesSvc)).Methods("GET")
	api.HandleFunc("/notes", CreateNoteHandler(notesSvc)).Methods("POST")
	api.HandleFunc("/notes/{id}", UpdateNoteHandler(notesSvc)).Methods("PUT")
	api.HandleFunc("/notes/{id}", DeleteNoteHandler(notesSvc)).Methods("DELETE")

	if webDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(webDir)))
	}

	return r
}
