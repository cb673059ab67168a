// filepath: internal/web/web.go
// Package web carries the embedded homepage assets. The index template is
// handed to the renderer; everything else is served as-is under /assets/.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed static
var staticFS embed.FS

// Template returns the raw homepage template with its placeholders intact.
func Template() string {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		// The file is compiled in; a miss means a broken build.
		panic("web: embedded index.html missing: " + err.Error())
	}
	return string(data)
}

// AddRoutes mounts the static asset handler.
func AddRoutes(r *mux.Router) {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: embedded static dir missing: " + err.Error())
	}
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.FS(content))))
}
