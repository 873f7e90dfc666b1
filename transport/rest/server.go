package rest

import "net/http"

// RegisterRoutes mounts the plain HTTP endpoints on mux.
func RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ping", NewPingHandler().PingHandler)
}
