package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"deal-calculator/domain"
	"deal-calculator/metrics"
	"deal-calculator/report"
	"deal-calculator/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req domain.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding report request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Format == "" {
		req.Format = domain.ReportFormatPDF
	}
	if req.Format != domain.ReportFormatPDF && req.Format != domain.ReportFormatXLSX {
		http.Error(w, "format must be pdf or xlsx", http.StatusBadRequest)
		return
	}

	analysisMetrics := service.ComputeDealMetrics(req.Deal)
	analysis := domain.DealAnalysis{
		Metrics:    analysisMetrics,
		Assessment: service.AssessDeal(req.Deal, analysisMetrics),
	}

	// Render into memory first so a failed build never leaves a partial
	// response behind.
	start := time.Now()
	var payload []byte
	var err error
	switch req.Format {
	case domain.ReportFormatPDF:
		payload, err = report.BuildDealPDF(req, analysis)
	case domain.ReportFormatXLSX:
		payload, err = report.BuildDealXLSX(req, analysis)
	}
	if err != nil {
		metrics.ObserveExport(req.Format, metrics.ResultError, time.Since(start))
		log.Printf("Error building %s report: %v", req.Format, err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	metrics.ObserveExport(req.Format, metrics.ResultSuccess, time.Since(start))

	if req.Format == domain.ReportFormatPDF {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="deal-report.pdf"`)
	} else {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="deal-report.xlsx"`)
	}
	if _, err := w.Write(payload); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}
