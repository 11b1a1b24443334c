package importer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"docparser/classification"
)

const (
	resultsSheet = "Results"
	summarySheet = "Summary"
)

// ExportReportXLSX сохраняет отчет о проверке корпуса в Excel:
// лист Results со всеми строками и лист Summary со сводкой по типам.
func ExportReportXLSX(path string, report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	// Переименовываем лист по умолчанию, чтобы не оставлять пустой Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	passStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create pass style: %w", err)
	}
	failStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create fail style: %w", err)
	}

	// Results
	headers := []string{"Line", "Input", "Expected", "Actual", "Status", "Problems", "Comment"}
	writeHeader(f, resultsSheet, headers, headerStyle)

	for i, r := range report.Rows {
		row := i + 2
		status, style := "PASS", passStyle
		if !r.Passed {
			status, style = "FAIL", failStyle
		}

		f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", row), r.Row.Line)
		f.SetCellStr(resultsSheet, fmt.Sprintf("B%d", row), r.Row.Input)
		f.SetCellStr(resultsSheet, fmt.Sprintf("C%d", row), FormatExpectations(r.Row.Expected))
		f.SetCellStr(resultsSheet, fmt.Sprintf("D%d", row), FormatDocuments(r.Actual))
		f.SetCellStr(resultsSheet, fmt.Sprintf("E%d", row), status)
		f.SetCellStr(resultsSheet, fmt.Sprintf("F%d", row), strings.Join(r.Problems, "; "))
		f.SetCellStr(resultsSheet, fmt.Sprintf("G%d", row), r.Row.Comment)
		f.SetCellStyle(resultsSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), style)
	}

	widths := []float64{8, 28, 36, 36, 10, 48, 30}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(resultsSheet, col, col, w)
	}
	if len(report.Rows) > 0 {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), len(report.Rows)+1)
		if err := f.AutoFilter(resultsSheet, "A1:"+lastCell, nil); err != nil {
			return fmt.Errorf("failed to set autofilter: %w", err)
		}
	}

	// Summary
	f.SetCellStr(summarySheet, "A1", "Total")
	f.SetCellValue(summarySheet, "B1", report.Total)
	f.SetCellStr(summarySheet, "A2", "Passed")
	f.SetCellValue(summarySheet, "B2", report.Passed)
	f.SetCellStr(summarySheet, "A3", "Failed")
	f.SetCellValue(summarySheet, "B3", report.Failed)
	f.SetCellStr(summarySheet, "A4", "Pass rate, %")
	f.SetCellValue(summarySheet, "B4", fmt.Sprintf("%.2f", report.PassRate()))

	writeHeaderAt(f, summarySheet, 6, []string{"Document type", "Title", "Expected", "Matched"}, headerStyle)
	for i, t := range sortedTypes(report.ByType) {
		row := i + 7
		c := report.ByType[t]
		f.SetCellStr(summarySheet, fmt.Sprintf("A%d", row), string(t))
		f.SetCellStr(summarySheet, fmt.Sprintf("B%d", row), t.Title())
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), c.Expected)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), c.Matched)
	}
	f.SetColWidth(summarySheet, "A", "A", 18)
	f.SetColWidth(summarySheet, "B", "B", 44)

	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	writeHeaderAt(f, sheet, 1, headers, style)
}

func writeHeaderAt(f *excelize.File, sheet string, row int, headers []string, style int) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func sortedTypes(m map[classification.DocumentType]*TypeCounts) []classification.DocumentType {
	types := make([]classification.DocumentType, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
