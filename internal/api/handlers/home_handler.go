// filepath: internal/api/handlers/home_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"navhub/internal/logging"
	"navhub/internal/render"
	"navhub/internal/services/auth"
	"navhub/internal/wallpaper"
)

// wallpaperCookie tracks the rotation position across requests.
const wallpaperCookie = "wallpaper_index"

// Home handles GET /, the server-rendered homepage.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	isAdmin := auth.IsAdmin(r.Context())

	page, err := h.HomeSvc.BuildHomePage(isAdmin, r.URL.Query().Get("catalog"))
	if err != nil {
		logging.Log.Errorf("Home: %v", err)
		// Store failures are fatal here and surface their message.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	wp := page.Layout.CustomWallpaper
	if page.Layout.RandomWallpaper {
		if rotated, ok := h.rotateWallpaper(w, r, page.Layout.BingCountry); ok {
			wp = rotated
		}
	}

	html := h.Renderer.Render(render.PageData{
		Page:      page,
		Site:      h.Cfg.Site,
		Wallpaper: wp,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// rotateWallpaper advances the rotation cookie and picks the next feed
// image. Rotation is best-effort: any feed failure leaves the configured
// wallpaper in place and sets no cookie.
func (h *Handlers) rotateWallpaper(w http.ResponseWriter, r *http.Request, country string) (string, bool) {
	index := -1
	if cookie, err := r.Cookie(wallpaperCookie); err == nil {
		if parsed, perr := strconv.Atoi(cookie.Value); perr == nil {
			index = parsed
		}
	}

	images, err := h.Wallpaper.Images(r.Context(), country)
	if err != nil || len(images) == 0 {
		if err != nil {
			logging.Log.Warnf("wallpaper feed unavailable: %v", err)
		}
		return "", false
	}

	index = wallpaper.Advance(index, len(images))
	http.SetCookie(w, &http.Cookie{
		Name:     wallpaperCookie,
		Value:    strconv.Itoa(index),
		Path:     "/",
		MaxAge:   365 * 24 * 3600,
		SameSite: http.SameSiteLaxMode,
	})
	return images[index], true
}
