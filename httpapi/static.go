package httpapi

import (
	"net/http"
	"path/filepath"
)

const indexFile = "index.html"

func (r *Router) registerStatic(mux *http.ServeMux) {
	index := filepath.Join(r.staticDir, indexFile)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, index)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServer(http.Dir(r.staticDir))))
}
