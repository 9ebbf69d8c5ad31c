package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const reportBody = `{
	"deal": {
		"property": {
			"purchase_price": 500000,
			"down_payment_pct": 20,
			"annual_interest_rate": 6.0,
			"loan_term_years": 30
		},
		"rental": {
			"monthly_gross_rent": 3000,
			"vacancy_rate_pct": 5
		}
	},
	"notes": "needs a roof inspection",
	"format": "%s"
}`

func postReport(t *testing.T, format string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewReportHandler()
	body := strings.Replace(reportBody, "%s", format, 1)

	req := httptest.NewRequest(
		http.MethodPost,
		"/deal/report",
		bytes.NewBufferString(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ExportReport(w, req)
	return w
}

func TestExportReportHandler_PDF(t *testing.T) {

	w := postReport(t, "pdf")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("expected PDF payload")
	}
}

func TestExportReportHandler_XLSX(t *testing.T) {

	w := postReport(t, "xlsx")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Errorf("expected non-empty workbook")
	}
}

func TestExportReportHandler_UnknownFormat(t *testing.T) {

	w := postReport(t, "docx")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportReportHandler_DefaultsToPDF(t *testing.T) {

	handler := NewReportHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/deal/report",
		bytes.NewBufferString(`{"deal": {"property": {"purchase_price": 100000}, "rental": {}}}`),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ExportReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected pdf default, got %s", ct)
	}
}

func TestExportReportHandler_RequiresJSON(t *testing.T) {

	handler := NewReportHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/deal/report",
		bytes.NewBufferString("not json"),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.ExportReport(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}
