package router

import (
	"encoding/json"
	"net/http"

	"github.com/dialogs/dialog-acceptor/service/info"
)

// AdminRouter router for administration functions
type AdminRouter struct {
	appinfo *info.Info
	mux     *http.ServeMux
}

// NewAdminRouter create router for administration functions.
// The metrics handler is served on /metrics when it is not nil.
func NewAdminRouter(appinfo *info.Info, metrics http.Handler) *AdminRouter {

	a := &AdminRouter{
		appinfo: appinfo,
	}

	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/health", a.health)
	a.mux.HandleFunc("/info", a.info)
	if metrics != nil {
		a.mux.Handle("/metrics", metrics)
	}

	return a
}

// Info return application info
func (a *AdminRouter) Info() *info.Info {
	return a.appinfo
}

// ServeHTTP dispatches the request (http.Handler implementation)
func (a *AdminRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a.mux.ServeHTTP(w, req)
}

// Health handler function for livenness and readiness probes
func (a *AdminRouter) health(w http.ResponseWriter, req *http.Request) {

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Info returns service information
func (a *AdminRouter) info(w http.ResponseWriter, req *http.Request) {

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.appinfo); err != nil {
		w.Write([]byte("unknown"))
	}
}
