package server

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all HTTP routes.
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods("GET")
	r.HandleFunc("/", handler.Index).Methods("GET")
	r.HandleFunc("/analyze", handler.Analyze).Methods("GET")
	r.HandleFunc("/chart", handler.Chart).Methods("GET")

	return r
}
