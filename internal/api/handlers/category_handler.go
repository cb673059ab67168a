// filepath: internal/api/handlers/category_handler.go
package handlers

import (
	"net/http"

	"navhub/internal/logging"
	"navhub/internal/services/auth"
)

// ListCategories handles GET /api/categories, feeding the admin UI picker.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Category.List(auth.IsAdmin(r.Context()))
	if err != nil {
		logging.Log.Errorf("ListCategories: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}
