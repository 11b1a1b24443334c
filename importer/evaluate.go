package importer

import (
	"fmt"
	"strings"
	"time"

	"docparser/classification"
)

// RowResult результат проверки одной строки корпуса
type RowResult struct {
	Row    CorpusRow
	Actual []classification.ExtractedDocument
	Passed bool
	// Расхождения в читаемом виде: "missing SNILS", "unexpected VIN",
	// "INN_UL: expected valid, got invalid"
	Problems []string
}

// TypeCounts счетчики по типу документа
type TypeCounts struct {
	Expected int
	Matched  int
}

// Report отчет о проверке корпуса
type Report struct {
	Total    int
	Passed   int
	Failed   int
	Rows     []RowResult
	ByType   map[classification.DocumentType]*TypeCounts
	Duration time.Duration
}

// FailedRows возвращает только непрошедшие строки
func (r *Report) FailedRows() []RowResult {
	var failed []RowResult
	for _, row := range r.Rows {
		if !row.Passed {
			failed = append(failed, row)
		}
	}
	return failed
}

// PassRate доля прошедших строк в процентах
func (r *Report) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}

// Evaluate прогоняет корпус через парсер и сравнивает с ожиданиями.
// Строка проходит, если множество найденных типов совпадает с ожидаемым
// и для каждого ожидания с указанной валидностью она совпала.
func Evaluate(rows []CorpusRow) *Report {
	start := time.Now()
	report := &Report{
		Total:  len(rows),
		Rows:   make([]RowResult, 0, len(rows)),
		ByType: make(map[classification.DocumentType]*TypeCounts),
	}

	for _, row := range rows {
		result := evaluateRow(row)
		for _, exp := range row.Expected {
			counts := report.counts(exp.Type)
			counts.Expected++
			if findDocument(result.Actual, exp.Type) != nil && !hasProblemFor(result.Problems, exp.Type) {
				counts.Matched++
			}
		}

		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Rows = append(report.Rows, result)
	}

	report.Duration = time.Since(start)
	return report
}

func (r *Report) counts(t classification.DocumentType) *TypeCounts {
	c, ok := r.ByType[t]
	if !ok {
		c = &TypeCounts{}
		r.ByType[t] = c
	}
	return c
}

func evaluateRow(row CorpusRow) RowResult {
	actual := classification.Parse(row.Input)
	result := RowResult{Row: row, Actual: actual}

	expectedTypes := make(map[classification.DocumentType]bool, len(row.Expected))
	for _, exp := range row.Expected {
		expectedTypes[exp.Type] = true

		doc := findDocument(actual, exp.Type)
		if doc == nil {
			result.Problems = append(result.Problems, "missing "+string(exp.Type))
			continue
		}
		if exp.Valid != nil && doc.IsValid != *exp.Valid {
			result.Problems = append(result.Problems, fmt.Sprintf("%s: expected %s, got %s",
				exp.Type, validityLabel(*exp.Valid), validityLabel(doc.IsValid)))
		}
	}

	for _, doc := range actual {
		if !expectedTypes[doc.DocType] {
			result.Problems = append(result.Problems, "unexpected "+string(doc.DocType))
		}
	}

	result.Passed = len(result.Problems) == 0
	return result
}

func findDocument(docs []classification.ExtractedDocument, t classification.DocumentType) *classification.ExtractedDocument {
	for i := range docs {
		if docs[i].DocType == t {
			return &docs[i]
		}
	}
	return nil
}

func hasProblemFor(problems []string, t classification.DocumentType) bool {
	prefix := string(t) + ":"
	for _, p := range problems {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// FormatDocuments описывает результат распознавания в формате корпуса
func FormatDocuments(docs []classification.ExtractedDocument) string {
	parts := make([]string, len(docs))
	for i, doc := range docs {
		if doc.IsValidationApplicable {
			parts[i] = string(doc.DocType) + ":" + validityLabel(doc.IsValid)
		} else {
			parts[i] = string(doc.DocType)
		}
	}
	return strings.Join(parts, ", ")
}

func validityLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
