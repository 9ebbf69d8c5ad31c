package http

import (
	"encoding/json"
	"net/http"

	"deal-calculator/domain"
	"deal-calculator/service"
)

type HouseHackHandler struct {
	service *service.HouseHackService
}

func NewHouseHackHandler(service *service.HouseHackService) *HouseHackHandler {
	return &HouseHackHandler{service: service}
}

func (h *HouseHackHandler) AnalyzeHouseHack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.HouseHackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.Analyze(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presentHouseHack(result))
}
