package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deal-calculator/domain"
	"deal-calculator/service"
)

func TestAnalyzeHouseHackHandler_OK(t *testing.T) {

	handler := NewHouseHackHandler(service.NewHouseHackService())

	body := []byte(`{
		"property": {
			"purchase_price": 500000,
			"down_payment_pct": 20,
			"annual_interest_rate": 6.5,
			"loan_term_years": 30
		},
		"monthly_room_rent": 1500
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/deal/house-hack",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.AnalyzeHouseHack(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.HouseHackResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.DownPaymentSavings != 100000 {
		t.Errorf("expected savings 100000, got %.2f", result.DownPaymentSavings)
	}
	if result.MonthlyHousingPayment <= 0 {
		t.Errorf("expected positive housing payment")
	}
}

func TestAnalyzeHouseHackHandler_MethodNotAllowed(t *testing.T) {

	handler := NewHouseHackHandler(service.NewHouseHackService())

	req := httptest.NewRequest(http.MethodGet, "/deal/house-hack", nil)
	w := httptest.NewRecorder()

	handler.AnalyzeHouseHack(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
