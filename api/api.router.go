package api

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/itsatony/gartentrack/api/resources"
	"github.com/itsatony/gartentrack/internal/trackservice"
	nuts "github.com/vaudience/go-nuts"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
	staticDir string
}

func NewRouter(svc *trackservice.TrackService, staticDir string) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
		staticDir: staticDir,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Public routes
	r.router.HandleFunc("/health", r.handleHealth).Methods(http.MethodGet)

	// Devices. The literal "operations" routes must be registered before the
	// parameterized "/{id}" routes so single-operation lookups never resolve
	// against the device id pattern.
	devices := r.router.PathPrefix("/devices").Subrouter()
	devices.HandleFunc("", r.resources.Devices.ListDevices).Methods(http.MethodGet)
	devices.HandleFunc("/", r.resources.Devices.ListDevices).Methods(http.MethodGet)
	devices.HandleFunc("", r.resources.Devices.CreateDevice).Methods(http.MethodPost)
	devices.HandleFunc("/", r.resources.Devices.CreateDevice).Methods(http.MethodPost)
	devices.HandleFunc("/operations/{operationId}", r.resources.Devices.GetOperation).Methods(http.MethodGet)
	devices.HandleFunc("/operations/{operationId}", r.resources.Devices.DeleteOperation).Methods(http.MethodDelete)
	devices.HandleFunc("/{id}", r.resources.Devices.GetDevice).Methods(http.MethodGet)
	devices.HandleFunc("/{id}", r.resources.Devices.UpdateDevice).Methods(http.MethodPut)
	devices.HandleFunc("/{id}", r.resources.Devices.DeleteDevice).Methods(http.MethodDelete)
	devices.HandleFunc("/{id}/operations", r.resources.Devices.ListOperations).Methods(http.MethodGet)
	devices.HandleFunc("/{id}/operations/", r.resources.Devices.ListOperations).Methods(http.MethodGet)
	devices.HandleFunc("/{id}/operations", r.resources.Devices.CreateOperation).Methods(http.MethodPost)
	devices.HandleFunc("/{id}/operations/", r.resources.Devices.CreateOperation).Methods(http.MethodPost)

	// Bottles mirror the device routes exactly
	bottles := r.router.PathPrefix("/bottles").Subrouter()
	bottles.HandleFunc("", r.resources.Bottles.ListBottles).Methods(http.MethodGet)
	bottles.HandleFunc("/", r.resources.Bottles.ListBottles).Methods(http.MethodGet)
	bottles.HandleFunc("", r.resources.Bottles.CreateBottle).Methods(http.MethodPost)
	bottles.HandleFunc("/", r.resources.Bottles.CreateBottle).Methods(http.MethodPost)
	bottles.HandleFunc("/operations/{operationId}", r.resources.Bottles.GetOperation).Methods(http.MethodGet)
	bottles.HandleFunc("/operations/{operationId}", r.resources.Bottles.DeleteOperation).Methods(http.MethodDelete)
	bottles.HandleFunc("/{id}", r.resources.Bottles.GetBottle).Methods(http.MethodGet)
	bottles.HandleFunc("/{id}", r.resources.Bottles.UpdateBottle).Methods(http.MethodPut)
	bottles.HandleFunc("/{id}", r.resources.Bottles.DeleteBottle).Methods(http.MethodDelete)
	bottles.HandleFunc("/{id}/operations", r.resources.Bottles.ListOperations).Methods(http.MethodGet)
	bottles.HandleFunc("/{id}/operations/", r.resources.Bottles.ListOperations).Methods(http.MethodGet)
	bottles.HandleFunc("/{id}/operations", r.resources.Bottles.CreateOperation).Methods(http.MethodPost)
	bottles.HandleFunc("/{id}/operations/", r.resources.Bottles.CreateOperation).Methods(http.MethodPost)

	// Front-end asset bundle
	if r.staticDir != "" {
		fs := http.FileServer(http.Dir(r.staticDir))
		r.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
		r.router.HandleFunc("/", r.handleIndex).Methods(http.MethodGet)
	}
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	http.ServeFile(w, req, filepath.Join(r.staticDir, "index.html"))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
