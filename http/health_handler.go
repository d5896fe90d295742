package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	startTime time.Time
	log       *logrus.Logger
}

func NewHealthHandler(log *logrus.Logger) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), log: log}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, map[string]string{
		"status": "healthy",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
