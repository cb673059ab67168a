// filepath: internal/httpserver/router.go
package httpserver

import (
	"navhub/internal/api/handlers"
	"navhub/internal/services/auth"
	"navhub/internal/web"

	"github.com/gorilla/mux"
)

// SetupRouter configures the router: public API endpoints, the admin-only
// mutation endpoints, static assets and the homepage.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Every request learns whether it carries an admin session; the read
	// endpoints use that to widen their result set rather than to reject.
	r.Use(am.Identify)

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/login", h.Login).Methods("POST")

	r.HandleFunc("/api/config", h.ListSites).Methods("GET")
	r.HandleFunc("/api/config", h.CreateSite).Methods("POST")
	r.HandleFunc("/api/categories", h.ListCategories).Methods("GET")

	// Mutations on existing rows are admin only.
	adminRouter := r.PathPrefix("/api").Subrouter()
	adminRouter.Use(am.RequireAdmin)
	adminRouter.HandleFunc("/config/{id:[0-9]+}", h.UpdateSite).Methods("PUT")
	adminRouter.HandleFunc("/config/{id:[0-9]+}", h.DeleteSite).Methods("DELETE")

	web.AddRoutes(r)
	r.HandleFunc("/", h.Home).Methods("GET")

	return r
}
