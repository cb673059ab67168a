// filepath: internal/services/home_service.go
package services

import (
	"navhub/internal/config"
	"navhub/internal/logging"
	"navhub/internal/models"
	"navhub/internal/repository"
)

// HomePage is everything one homepage render needs: the loaded sites, the
// ordered category menu, the resolved selection and the layout switches.
type HomePage struct {
	Sites    []models.Site
	Catalogs []models.CatalogMeta
	Selected string // empty when ShowAll
	ShowAll  bool
	Layout   models.LayoutSettings
}

var _ HomeService = (*homeService)(nil)

type homeService struct {
	repo *repository.Repository
	cfg  *config.Config
}

// NewHomeService creates the homepage assembly service.
func NewHomeService(repo *repository.Repository, cfg *config.Config) HomeService {
	return &homeService{repo: repo, cfg: cfg}
}

// BuildHomePage loads the visible sites, derives the category ordering and
// resolves the catalog selection. Site/category load failures are fatal;
// a settings read failure only costs the theme, never the page.
func (s *homeService) BuildHomePage(isAdmin bool, requestedCatalog string) (*HomePage, error) {
	sites, err := s.repo.LoadHomeSites(isAdmin)
	if err != nil {
		return nil, err
	}

	declared, err := s.repo.CategoryOrders()
	if err != nil {
		return nil, err
	}

	catalogs := BuildCatalogs(sites, declared)
	selected, showAll := ResolveCatalog(requestedCatalog, s.cfg.Site.DisplayCategory, catalogs)

	settings, err := s.repo.LoadSettings()
	if err != nil {
		logging.Log.Warnf("settings load failed, using layout defaults: %v", err)
		settings = map[string]string{}
	}

	return &HomePage{
		Sites:    sites,
		Catalogs: catalogs,
		Selected: selected,
		ShowAll:  showAll,
		Layout:   ParseLayoutSettings(settings),
	}, nil
}

// VisibleSites returns the sites of the selected catalog, or all of them
// for the full listing.
func (p *HomePage) VisibleSites() []models.Site {
	if p.ShowAll {
		return p.Sites
	}
	visible := make([]models.Site, 0, len(p.Sites))
	for _, site := range p.Sites {
		if site.CatelogName == p.Selected {
			visible = append(visible, site)
		}
	}
	return visible
}
