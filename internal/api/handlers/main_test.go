// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"

	"navhub/internal/audit"
	"navhub/internal/config"
	"navhub/internal/models"
	"navhub/internal/render"
	"navhub/internal/services"
	"navhub/internal/services/auth"
	"navhub/internal/wallpaper"
	"navhub/internal/web"

	"github.com/stretchr/testify/mock"
)

// --- MOCK SITE SERVICE ---

type MockSiteService struct {
	mock.Mock
}

var _ services.SiteService = (*MockSiteService)(nil)

func (m *MockSiteService) List(q models.SiteListQuery) (*models.SiteListResult, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteListResult), args.Error(1)
}

func (m *MockSiteService) Create(req *models.SiteCreateRequest, isAdmin bool) (*models.Site, error) {
	args := m.Called(req, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Site), args.Error(1)
}

func (m *MockSiteService) Update(id int64, req *models.SiteCreateRequest) (*models.Site, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Site), args.Error(1)
}

func (m *MockSiteService) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// --- MOCK CATEGORY SERVICE ---

type MockCategoryService struct {
	mock.Mock
}

var _ services.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) List(includePrivate bool) ([]models.Category, error) {
	args := m.Called(includePrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

// --- MOCK HOME SERVICE ---

type MockHomeService struct {
	mock.Mock
}

var _ services.HomeService = (*MockHomeService)(nil)

func (m *MockHomeService) BuildHomePage(isAdmin bool, requestedCatalog string) (*services.HomePage, error) {
	args := m.Called(isAdmin, requestedCatalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.HomePage), args.Error(1)
}

// --- MOCK TOKEN SERVICE ---

type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Authenticate(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) bool {
	args := m.Called(tokenString)
	return args.Bool(0)
}

// --- MOCK WALLPAPER SOURCE ---

type MockWallpaperSource struct {
	mock.Mock
}

var _ wallpaper.Source = (*MockWallpaperSource)(nil)

func (m *MockWallpaperSource) Images(ctx context.Context, country string) ([]string, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- helpers ---

type testMocks struct {
	site      *MockSiteService
	category  *MockCategoryService
	home      *MockHomeService
	token     *MockTokenService
	wallpaper *MockWallpaperSource
}

func newTestHandlers(cfg *config.Config) (*Handlers, *testMocks) {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Site.Name = "NavHub"
	}
	m := &testMocks{
		site:      new(MockSiteService),
		category:  new(MockCategoryService),
		home:      new(MockHomeService),
		token:     new(MockTokenService),
		wallpaper: new(MockWallpaperSource),
	}
	h := NewHandlers(m.site, m.category, m.home, m.token, m.wallpaper,
		render.New(web.Template()), audit.NewLoggerAuditor(false), cfg)
	return h, m
}

func adminContext(ctx context.Context) context.Context {
	return auth.WithAdmin(ctx, true)
}
