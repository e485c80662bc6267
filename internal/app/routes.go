package app

import (
	"github.com/gorilla/mux"
	"github.com/laydays/laydays/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Port calls
	r.HandleFunc("/api/portcall", deps.PortCallHandler.CreatePortCall).Methods("POST")
	r.HandleFunc("/api/portcall", deps.PortCallHandler.ListPortCalls).Methods("GET")
	r.HandleFunc("/api/portcall/{uid}", deps.PortCallHandler.GetPortCall).Methods("GET")
	r.HandleFunc("/api/portcall/{uid}", deps.PortCallHandler.DeletePortCall).Methods("DELETE")

	// Statement of facts events
	r.HandleFunc("/api/portcall/{uid}/events", deps.EventHandler.ReplaceEvents).Methods("PUT")
	r.HandleFunc("/api/portcall/{uid}/events", deps.EventHandler.GetNormalizedEvents).Methods("GET")

	// Derived artifacts
	r.HandleFunc("/api/portcall/{uid}/timeline", deps.TimelineHandler.GetTimeline).Methods("GET")
	r.HandleFunc("/api/portcall/{uid}/laytime", deps.LaytimeHandler.GetAllocation).Methods("GET")
}
