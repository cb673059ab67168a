// filepath: internal/services/site_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"navhub/internal/config"
	"navhub/internal/logging"
	"navhub/internal/models"
	"navhub/internal/repository"
)

// fetchAllThreshold marks a pageSize as a "fetch everything" request. For
// those the count query is skipped and the total is derived from the rows
// actually returned, saving one round-trip on the largest requests.
const fetchAllThreshold = 1000

var _ SiteService = (*siteService)(nil)

type siteService struct {
	repo *repository.Repository
	cfg  *config.Config
}

// NewSiteService creates the bookmark management service.
func NewSiteService(repo *repository.Repository, cfg *config.Config) SiteService {
	return &siteService{repo: repo, cfg: cfg}
}

// List returns one page of sites plus the total row count. The page and
// count query share one predicate.
func (s *siteService) List(q models.SiteListQuery) (*models.SiteListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	sites, err := s.repo.ListSites(q)
	if err != nil {
		return nil, err
	}

	var total int
	if q.PageSize >= fetchAllThreshold {
		// Fetch-all requests: the page already holds every remaining row,
		// so offset + returned is the real total without a second query.
		offset := (q.Page - 1) * q.PageSize
		total = offset + len(sites)
	} else {
		total, err = s.repo.CountSites(q)
		if err != nil {
			return nil, err
		}
	}

	return &models.SiteListResult{
		Code:     200,
		Data:     sites,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// Create validates and stores a new site. A public submission (isAdmin
// false) is always stored private, pending review.
func (s *siteService) Create(req *models.SiteCreateRequest, isAdmin bool) (*models.Site, error) {
	if req.Name == "" || req.URL == "" || req.CatelogID == 0 {
		return nil, fmt.Errorf("%w: name, url and catelogId are required", ErrValidation)
	}

	exists, err := s.repo.SiteURLExists(req.URL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: a site with this url already exists", ErrConflict)
	}

	cat, err := s.repo.GetCategory(req.CatelogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: unknown category id %d", ErrValidation, req.CatelogID)
		}
		return nil, err
	}

	site := s.buildSite(req, cat)
	if !isAdmin {
		site.IsPrivate = true
	}

	created, err := s.repo.InsertSite(site)
	if err != nil {
		return nil, err
	}

	logging.Log.WithField("site", created.Name).WithField("category", cat.Catelog).Info("site created")
	return created, nil
}

// Update rewrites an existing site, re-running the same validation chain
// as Create and re-deriving the denormalized category name.
func (s *siteService) Update(id int64, req *models.SiteCreateRequest) (*models.Site, error) {
	if req.Name == "" || req.URL == "" || req.CatelogID == 0 {
		return nil, fmt.Errorf("%w: name, url and catelogId are required", ErrValidation)
	}

	existing, err := s.repo.GetSite(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.URL != existing.URL {
		exists, err := s.repo.SiteURLExists(req.URL)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: a site with this url already exists", ErrConflict)
		}
	}

	cat, err := s.repo.GetCategory(req.CatelogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: unknown category id %d", ErrValidation, req.CatelogID)
		}
		return nil, err
	}

	site := s.buildSite(req, cat)
	site.ID = id
	site.CreateTime = existing.CreateTime

	if err := s.repo.UpdateSite(site); err != nil {
		return nil, err
	}
	return s.repo.GetSite(id)
}

// Delete removes a site by id.
func (s *siteService) Delete(id int64) error {
	deleted, err := s.repo.DeleteSite(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// buildSite maps a request onto a storable site, applying the private
// category override and the default logo derivation.
func (s *siteService) buildSite(req *models.SiteCreateRequest, cat *models.Category) *models.Site {
	site := &models.Site{
		Name:        req.Name,
		URL:         req.URL,
		CatelogID:   cat.ID,
		CatelogName: cat.Catelog,
		SortOrder:   models.DefaultSortOrder,
	}
	if req.SortOrder != nil {
		site.SortOrder = *req.SortOrder
	}
	if req.IsPrivate != nil {
		site.IsPrivate = *req.IsPrivate
	}
	// A private category makes every site in it private, whatever the
	// request asked for.
	if cat.IsPrivate {
		site.IsPrivate = true
	}

	logo := req.Logo
	if logo == "" {
		logo = s.defaultLogo(req.URL)
	}
	if logo != "" {
		site.Logo = &logo
	}
	if req.Desc != "" {
		desc := req.Desc
		site.Desc = &desc
	}
	return site
}

// defaultLogo derives an icon-lookup URL from the site's host. Only http(s)
// URLs get one; the default icon service additionally takes the larger-size
// query flag.
func (s *siteService) defaultLogo(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}

	base, isDefault := s.cfg.IconAPI()
	logo := strings.TrimRight(base, "/") + "/" + u.Host
	if isDefault {
		logo += "?larger=true"
	}
	return logo
}
