// filepath: internal/api/handlers/main.go
package handlers

import (
	"navhub/internal/config"
	"navhub/internal/render"
	"navhub/internal/services"
	"navhub/internal/services/auth"
	"navhub/internal/wallpaper"
)

// Handlers holds the shared dependencies of the HTTP layer. Handlers depend
// on the service interfaces, never on the repository directly.
type Handlers struct {
	Site     services.SiteService
	Category services.CategoryService
	HomeSvc  services.HomeService

	Token     auth.TokenService
	Wallpaper wallpaper.Source
	Renderer  *render.Renderer
	Audit     services.Auditor

	Cfg *config.Config
}

// NewHandlers wires the handler set.
func NewHandlers(
	site services.SiteService,
	category services.CategoryService,
	home services.HomeService,
	token auth.TokenService,
	wp wallpaper.Source,
	renderer *render.Renderer,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Site:      site,
		Category:  category,
		HomeSvc:   home,
		Token:     token,
		Wallpaper: wp,
		Renderer:  renderer,
		Audit:     auditor,
		Cfg:       cfg,
	}
}
