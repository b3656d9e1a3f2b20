package handlers

import (
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// ConnectionCounter, health response'undaki canlı bağlantı sayısı için.
type ConnectionCounter interface {
	ConnectionCount() int
}

// HealthHandler: GET /api/health
type HealthHandler struct {
	conns ConnectionCounter
}

// NewHealthHandler, constructor. conns nil olabilir.
func NewHealthHandler(conns ConnectionCounter) *HealthHandler {
	return &HealthHandler{conns: conns}
}

type healthStatus struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}

// Health, servis ayaktaysa 200 döner.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok"}
	if h.conns != nil {
		status.Connections = h.conns.ConnectionCount()
	}
	pkg.JSON(w, http.StatusOK, status)
}
