// filepath: internal/api/handlers/health_handler.go
package handlers

import "net/http"

// HealthCheck handles GET /health for load balancers and uptime probes.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
