package domain

// Report export formats.
const (
	ReportFormatPDF  = "pdf"
	ReportFormatXLSX = "xlsx"
)

// ReportRequest asks for a rendered deal report. Notes are freeform and
// optional.
type ReportRequest struct {
	Deal   DealInput `json:"deal"`
	Notes  string    `json:"notes"`
	Format string    `json:"format"`
}
