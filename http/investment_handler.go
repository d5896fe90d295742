package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"invest-calc/domain"
	"invest-calc/service"
)

type InvestmentHandler struct {
	service *service.InvestmentService
	log     *logrus.Logger
}

func NewInvestmentHandler(service *service.InvestmentService, log *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{service: service, log: log}
}

// Schedule handles POST /investment/schedule.
func (h *InvestmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input domain.InvestmentInput
	if !h.decode(w, r, &input) {
		return
	}
	h.respond(w, "schedule", func() (any, error) { return h.service.Schedule(input) })
}

// FutureValue handles POST /investment/future-value.
func (h *InvestmentHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var input domain.FutureValueInput
	if !h.decode(w, r, &input) {
		return
	}
	h.respond(w, "future value", func() (any, error) { return h.service.FutureValue(input) })
}

// InvestmentPeriod handles POST /investment/period.
func (h *InvestmentHandler) InvestmentPeriod(w http.ResponseWriter, r *http.Request) {
	var input domain.InvestmentPeriodInput
	if !h.decode(w, r, &input) {
		return
	}
	h.respond(w, "investment period", func() (any, error) { return h.service.InvestmentPeriod(input) })
}

// ReturnRate handles POST /investment/return-rate.
func (h *InvestmentHandler) ReturnRate(w http.ResponseWriter, r *http.Request) {
	var input domain.ReturnRateInput
	if !h.decode(w, r, &input) {
		return
	}
	h.respond(w, "return rate", func() (any, error) { return h.service.ReturnRate(input) })
}

// History handles GET /investment/history.
func (h *InvestmentHandler) History(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "history", func() (any, error) { return h.service.History() })
}

func (h *InvestmentHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.WithError(err).Debug("invalid request body")
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *InvestmentHandler) respond(w http.ResponseWriter, op string, run func() (any, error)) {
	result, err := run()
	if err != nil {
		status := statusFor(err)
		entry := h.log.WithError(err).WithField("op", op)
		if status == http.StatusInternalServerError {
			entry.Error("calculation failed")
			writeError(w, h.log, status, "internal server error")
			return
		}
		entry.Info("rejected calculation")
		writeError(w, h.log, status, err.Error())
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}
