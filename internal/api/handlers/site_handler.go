// filepath: internal/api/handlers/site_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"navhub/internal/logging"
	"navhub/internal/models"
	"navhub/internal/services"
	"navhub/internal/services/auth"

	"github.com/gorilla/mux"
)

// ListSites handles GET /api/config. Anonymous callers only see public
// rows; an admin session includes private ones.
func (h *Handlers) ListSites(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := models.SiteListQuery{
		Catalog:        params.Get("catalog"),
		Keyword:        params.Get("keyword"),
		IncludePrivate: auth.IsAdmin(r.Context()),
	}
	if raw := params.Get("catalogId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.CatalogID = id
		}
	}
	if raw := params.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			q.Page = page
		}
	}
	if raw := params.Get("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			q.PageSize = size
		}
	}

	result, err := h.Site.List(q)
	if err != nil {
		logging.Log.Errorf("ListSites: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// CreateSite handles POST /api/config. Admin only, unless public submission
// is switched on, in which case anonymous submissions land as private rows.
func (h *Handlers) CreateSite(w http.ResponseWriter, r *http.Request) {
	isAdmin := auth.IsAdmin(r.Context())
	if !isAdmin && !h.Cfg.Site.EnablePublicSubmission {
		respondWithError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req models.SiteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	site, err := h.Site.Create(&req, isAdmin)
	if err != nil {
		h.writeSiteError(w, err, "CreateSite")
		return
	}

	h.Audit.Log(r.Context(), "site.create", actorName(isAdmin), site.URL,
		map[string]interface{}{"id": site.ID, "name": site.Name})

	respondWithJSON(w, http.StatusCreated, models.SiteCreateResponse{
		Code:    http.StatusCreated,
		Message: "success",
		Insert:  site,
	})
}

// UpdateSite handles PUT /api/config/{id}. Admin only, enforced by the
// router middleware.
func (h *Handlers) UpdateSite(w http.ResponseWriter, r *http.Request) {
	id, ok := sitePathID(w, r)
	if !ok {
		return
	}

	var req models.SiteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	site, err := h.Site.Update(id, &req)
	if err != nil {
		h.writeSiteError(w, err, "UpdateSite")
		return
	}

	h.Audit.Log(r.Context(), "site.update", actorName(true), site.URL,
		map[string]interface{}{"id": site.ID, "name": site.Name})

	respondWithJSON(w, http.StatusOK, site)
}

// DeleteSite handles DELETE /api/config/{id}. Admin only.
func (h *Handlers) DeleteSite(w http.ResponseWriter, r *http.Request) {
	id, ok := sitePathID(w, r)
	if !ok {
		return
	}

	if err := h.Site.Delete(id); err != nil {
		h.writeSiteError(w, err, "DeleteSite")
		return
	}

	h.Audit.Log(r.Context(), "site.delete", actorName(true), strconv.FormatInt(id, 10), nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "deleted"})
}

func actorName(isAdmin bool) string {
	if isAdmin {
		return "admin"
	}
	return "public"
}

func sitePathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid site id.")
		return 0, false
	}
	return id, true
}

// writeSiteError maps service errors onto HTTP statuses.
func (h *Handlers) writeSiteError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		// Store failures surface their message, same as the list path.
		logging.Log.Errorf("%s: %v", op, err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
