package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"docparser/classification"
)

// ErrUnsupportedFormat корпус в неподдерживаемом формате
var ErrUnsupportedFormat = errors.New("unsupported corpus format")

// Expectation ожидаемый результат распознавания. Valid == nil означает,
// что валидность не проверяется.
type Expectation struct {
	Type  classification.DocumentType
	Valid *bool
}

// String возвращает запись ожидания в формате корпуса: TYPE или TYPE:valid
func (e Expectation) String() string {
	switch {
	case e.Valid == nil:
		return string(e.Type)
	case *e.Valid:
		return string(e.Type) + ":valid"
	default:
		return string(e.Type) + ":invalid"
	}
}

// CorpusRow строка эталонного корпуса
type CorpusRow struct {
	Line     int
	Input    string
	Expected []Expectation
	Comment  string
}

// ReadCorpus читает корпус из CSV или XLSX по расширению файла
func ReadCorpus(path string) ([]CorpusRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus: %w", err)
		}
		return ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV читает корпус из CSV. Кодировка (UTF-8 или Windows-1251)
// и разделитель (';' или ',') определяются автоматически.
func ReadCSV(r io.Reader) ([]CorpusRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		records [][]string
		lines   []int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}

	return parseRecords(records, lines)
}

// ReadXLSX читает корпус с первого листа XLSX файла
func ReadXLSX(path string) ([]CorpusRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	lines := make([]int, len(records))
	for i := range lines {
		lines[i] = i + 1
	}
	return parseRecords(records, lines)
}

// ParseExpected разбирает список ожиданий вида "INN_UL:valid, PASSPORT_RF".
// Пустая строка означает ожидание NOT_FOUND.
func ParseExpected(s string) ([]Expectation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Expectation{{Type: classification.DocTypeNotFound}}, nil
	}

	var expectations []Expectation
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, validity, hasValidity := strings.Cut(part, ":")
		docType, ok := classification.ParseDocumentType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown document type %q", name)
		}

		exp := Expectation{Type: docType}
		if hasValidity {
			var valid bool
			switch strings.ToLower(strings.TrimSpace(validity)) {
			case "valid", "true", "1":
				valid = true
			case "invalid", "false", "0":
				valid = false
			default:
				return nil, fmt.Errorf("unknown validity %q for %s", validity, docType)
			}
			exp.Valid = &valid
		}
		expectations = append(expectations, exp)
	}

	return expectations, nil
}

// FormatExpectations собирает ожидания обратно в строку корпуса
func FormatExpectations(expectations []Expectation) string {
	parts := make([]string, len(expectations))
	for i, e := range expectations {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// WriteCSV записывает корпус в CSV с разделителем ';'
func WriteCSV(w io.Writer, rows []CorpusRow) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write([]string{"input", "expected", "comment"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Input, FormatExpectations(row.Expected), row.Comment}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// columnIndices позиции колонок корпуса
type columnIndices struct {
	input    int
	expected int
	comment  int
}

// parseRecords разбирает записи; lines содержит номер строки файла для каждой записи
func parseRecords(records [][]string, lines []int) ([]CorpusRow, error) {
	cols := columnIndices{input: 0, expected: 1, comment: 2}
	start := 0
	if len(records) > 0 && isHeader(records[0]) {
		cols = headerIndices(records[0])
		start = 1
	}

	rows := make([]CorpusRow, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		record := records[i]
		if isBlank(record) {
			continue
		}

		line := lines[i]
		expected, err := ParseExpected(field(record, cols.expected))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, CorpusRow{
			Line:     line,
			Input:    field(record, cols.input),
			Expected: expected,
			Comment:  field(record, cols.comment),
		})
	}

	return rows, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "input")
}

func headerIndices(header []string) columnIndices {
	cols := columnIndices{input: -1, expected: -1, comment: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "input":
			cols.input = i
		case "expected":
			cols.expected = i
		case "comment":
			cols.comment = i
		}
	}
	return cols
}

// field возвращает значение колонки; входная строка не обрезается,
// пробелы в ней значимы для распознавания
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// decodeText возвращает текст в UTF-8. Невалидный UTF-8 считается Windows-1251.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode Windows-1251: %w", err)
	}
	return string(decoded), nil
}

// detectDelimiter выбирает ';' или ',' по первой строке
func detectDelimiter(text string) rune {
	firstLine, _, _ := strings.Cut(text, "\n")
	if strings.Count(firstLine, ";") >= strings.Count(firstLine, ",") && strings.Contains(firstLine, ";") {
		return ';'
	}
	return ','
}
