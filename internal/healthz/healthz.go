// Package healthz provides an API enabling the support of service health
// checks. The process marks itself healthy once it is ready to serve, and sick
// once it begins shutting down.
package healthz

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Status is the health reported to clients.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusSick    Status = "sick"
)

// NewHTTP creates an HTTP instance. The instance is sick until Healthy is
// called.
func NewHTTP() *HTTP {
	return &HTTP{status: StatusSick}
}

// HTTP provides an HTTP handler to correctly handle HTTP-based health checks.
type HTTP struct {
	mutex  sync.RWMutex
	status Status
}

type response struct {
	Status Status `json:"status"`
}

// ServeHTTP implements the http.Handler interface. Healthy instances respond
// 200, sick ones 503; both describe their status in a JSON body.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	status := h.Status()
	code := http.StatusOK
	if status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(response{Status: status})
}

// Status retrieves the status currently reported.
func (h *HTTP) Status() Status {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.status
}

// IsHealthy indicates if the HTTP instance reports healthy.
func (h *HTTP) IsHealthy() bool {
	return h.Status() == StatusHealthy
}

// Healthy marks the HTTP instance healthy.
func (h *HTTP) Healthy() { h.set(StatusHealthy) }

// Sick marks the HTTP instance sick.
func (h *HTTP) Sick() { h.set(StatusSick) }

func (h *HTTP) set(status Status) {
	h.mutex.Lock()
	h.status = status
	h.mutex.Unlock()
}
