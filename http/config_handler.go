package http

import (
	"encoding/json"
	"log"
	"net/http"

	"deal-calculator/domain"
	"deal-calculator/metrics"
	"deal-calculator/service"
)

type ConfigHandler struct {
	service *service.ConfigService
}

func NewConfigHandler(service *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

type saveConfigurationRequest struct {
	Name  string           `json:"name"`
	Input domain.DealInput `json:"input"`
}

// HandleConfiguration saves on POST, loads by id on GET.
func (h *ConfigHandler) HandleConfiguration(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.load(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ConfigHandler) save(w http.ResponseWriter, r *http.Request) {
	var req saveConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg, err := h.service.SaveConfiguration(req.Name, req.Input)
	if err != nil {
		metrics.IncConfigOp("save", metrics.ResultError)
		log.Printf("Error saving configuration: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.IncConfigOp("save", metrics.ResultSuccess)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *ConfigHandler) load(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	cfg, err := h.service.LoadConfiguration(id)
	if err != nil {
		metrics.IncConfigOp("load", metrics.ResultError)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	metrics.IncConfigOp("load", metrics.ResultSuccess)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}
