// filepath: internal/api/handlers/site_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"navhub/internal/config"
	"navhub/internal/models"
	"navhub/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSitesParsesQuery(t *testing.T) {
	h, m := newTestHandlers(nil)

	expected := models.SiteListQuery{
		Catalog:   "Dev",
		CatalogID: 3,
		Page:      2,
		PageSize:  5,
		Keyword:   "git",
	}
	m.site.On("List", expected).Return(&models.SiteListResult{
		Code: 200, Data: []models.Site{}, Total: 0, Page: 2, PageSize: 5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/config?catalog=Dev&catalogId=3&page=2&pageSize=5&keyword=git", nil)
	rr := httptest.NewRecorder()
	h.ListSites(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.site.AssertExpectations(t)
}

func TestListSitesAdminIncludesPrivate(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("List", models.SiteListQuery{IncludePrivate: true}).
		Return(&models.SiteListResult{Code: 200, Page: 1, PageSize: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req = req.WithContext(adminContext(req.Context()))
	rr := httptest.NewRecorder()
	h.ListSites(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.site.AssertExpectations(t)
}

func TestListSitesStoreError(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("List", models.SiteListQuery{}).
		Return(nil, errors.New("no such table: sites"))

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := httptest.NewRecorder()
	h.ListSites(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	// The raw store error text is surfaced to the caller.
	assert.Contains(t, rr.Body.String(), "no such table: sites")
}

func TestCreateSiteRequiresAuth(t *testing.T) {
	h, _ := newTestHandlers(nil)

	body := bytes.NewBufferString(`{"name":"GitHub","url":"https://github.com","catelogId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/config", body)
	rr := httptest.NewRecorder()
	h.CreateSite(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateSiteAsAdmin(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("Create", &models.SiteCreateRequest{
		Name: "GitHub", URL: "https://github.com", CatelogID: 1,
	}, true).Return(&models.Site{ID: 7, Name: "GitHub", URL: "https://github.com"}, nil)

	body := bytes.NewBufferString(`{"name":"GitHub","url":"https://github.com","catelogId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/config", body)
	req = req.WithContext(adminContext(req.Context()))
	rr := httptest.NewRecorder()
	h.CreateSite(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.SiteCreateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "success", resp.Message)
	require.NotNil(t, resp.Insert)
	assert.Equal(t, int64(7), resp.Insert.ID)
	m.site.AssertExpectations(t)
}

func TestCreateSitePublicSubmission(t *testing.T) {
	cfg := &config.Config{}
	cfg.Site.EnablePublicSubmission = true
	h, m := newTestHandlers(cfg)

	// Anonymous caller, isAdmin false flows through to the service.
	m.site.On("Create", &models.SiteCreateRequest{
		Name: "Blog", URL: "https://blog.example.com", CatelogID: 2,
	}, false).Return(&models.Site{ID: 8, IsPrivate: true}, nil)

	body := bytes.NewBufferString(`{"name":"Blog","url":"https://blog.example.com","catelogId":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/config", body)
	rr := httptest.NewRecorder()
	h.CreateSite(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	m.site.AssertExpectations(t)
}

func TestCreateSiteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"validation", services.ErrValidation, http.StatusBadRequest, ""},
		{"duplicate url", services.ErrConflict, http.StatusConflict, ""},
		// Store failures surface their raw message in the 500 body.
		{"store failure", errors.New("disk io"), http.StatusInternalServerError, "disk io"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandlers(nil)
			m.site.On("Create", mock.AnythingOfType("*models.SiteCreateRequest"), true).
				Return(nil, tc.err)

			body := bytes.NewBufferString(`{"name":"x","url":"https://x.com","catelogId":1}`)
			req := httptest.NewRequest(http.MethodPost, "/api/config", body)
			req = req.WithContext(adminContext(req.Context()))
			rr := httptest.NewRecorder()
			h.CreateSite(rr, req)

			assert.Equal(t, tc.code, rr.Code)
			if tc.body != "" {
				assert.Contains(t, rr.Body.String(), tc.body)
			}
		})
	}
}

func TestCreateSiteBadJSON(t *testing.T) {
	h, _ := newTestHandlers(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/config", bytes.NewBufferString("{nope"))
	req = req.WithContext(adminContext(req.Context()))
	rr := httptest.NewRecorder()
	h.CreateSite(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSite(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("Update", int64(4), &models.SiteCreateRequest{
		Name: "GitHub", URL: "https://github.com", CatelogID: 1,
	}).Return(&models.Site{ID: 4, Name: "GitHub"}, nil)

	body := bytes.NewBufferString(`{"name":"GitHub","url":"https://github.com","catelogId":1}`)
	req := httptest.NewRequest(http.MethodPut, "/api/config/4", body)
	req = mux.SetURLVars(req, map[string]string{"id": "4"})
	rr := httptest.NewRecorder()
	h.UpdateSite(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.site.AssertExpectations(t)
}

func TestUpdateSiteBadID(t *testing.T) {
	h, _ := newTestHandlers(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/config/abc", bytes.NewBufferString("{}"))
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()
	h.UpdateSite(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteSite(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("Delete", int64(4)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/config/4", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "4"})
	rr := httptest.NewRecorder()
	h.DeleteSite(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.site.AssertExpectations(t)
}

func TestDeleteSiteNotFound(t *testing.T) {
	h, m := newTestHandlers(nil)

	m.site.On("Delete", int64(99)).Return(services.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/config/99", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rr := httptest.NewRecorder()
	h.DeleteSite(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
