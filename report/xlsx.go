package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"deal-calculator/domain"
)

// BuildDealXLSX renders the deal report as a workbook with a property
// sheet and an analysis sheet, mirroring the PDF layout.
func BuildDealXLSX(req domain.ReportRequest, analysis domain.DealAnalysis) ([]byte, error) {
	f := excelize.NewFile()
	propertySheet := "property"
	analysisSheet := "analysis"
	f.SetSheetName("Sheet1", propertySheet)
	if _, err := f.NewSheet(analysisSheet); err != nil {
		return nil, err
	}

	if err := writeSheet(f, propertySheet, propertyRows(req.Deal)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, analysisSheet, analysisRows(analysis)); err != nil {
		return nil, err
	}

	if req.Notes != "" {
		notesRow := len(analysisRows(analysis)) + 3
		_ = f.SetCellValue(analysisSheet, fmt.Sprintf("A%d", notesRow), "Notes")
		_ = f.SetCellValue(analysisSheet, fmt.Sprintf("B%d", notesRow), req.Notes)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows []row) error {
	if err := f.SetCellValue(sheet, "A1", "Item"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	for i, r := range rows {
		rowNum := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), r.label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), r.value)
	}
	return nil
}
