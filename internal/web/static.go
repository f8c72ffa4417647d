package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

func serveStatic(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeFileFS(w, r, staticFiles, "static/"+name)
	}
}
