package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the calculator endpoints. Everything under /investment is
// rate limited per client.
func NewRouter(
	investment *InvestmentHandler,
	health *HealthHandler,
	limiter *RateLimiter,
	trustProxy bool,
	log *logrus.Logger,
) *mux.Router {

	r := mux.NewRouter()
	r.Use(LoggingMiddleware(log))
	r.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/investment").Subrouter()
	api.Use(RateLimitMiddleware(limiter, trustProxy, log))
	api.HandleFunc("/schedule", investment.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/future-value", investment.FutureValue).Methods(http.MethodPost)
	api.HandleFunc("/period", investment.InvestmentPeriod).Methods(http.MethodPost)
	api.HandleFunc("/return-rate", investment.ReturnRate).Methods(http.MethodPost)
	api.HandleFunc("/history", investment.History).Methods(http.MethodGet)

	return r
}
