package http

import (
	"encoding/json"
	"net/http"
	"time"

	"deal-calculator/domain"
	"deal-calculator/metrics"
	"deal-calculator/service"
)

type DealHandler struct {
	service *service.DealService
}

func NewDealHandler(service *service.DealService) *DealHandler {
	return &DealHandler{service: service}
}

func (h *DealHandler) AnalyzeDeal(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.DealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		metrics.ObserveAnalyze(metrics.ResultError, 0)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	analysis := h.service.AnalyzeDeal(input)
	metrics.ObserveAnalyze(metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presentAnalysis(analysis))
}
