package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"docparser/classification"
	"docparser/importer"
)

func main() {
	var (
		input      = flag.String("input", "", "Строка для распознавания")
		corpusPath = flag.String("corpus", "", "Путь к эталонному корпусу (CSV или XLSX)")
		reportPath = flag.String("report", "", "Сохранить отчет по корпусу в XLSX")
		listTypes  = flag.Bool("types", false, "Показать поддерживаемые форматы")
		verbose    = flag.Bool("verbose", false, "Показать все строки корпуса, а не только ошибки")
	)
	flag.Parse()

	switch {
	case *listTypes:
		printCatalog()
	case *corpusPath != "":
		if !checkCorpus(*corpusPath, *reportPath, *verbose) {
			os.Exit(1)
		}
	case *input != "" || flag.NArg() > 0:
		value := *input
		if value == "" {
			value = strings.Join(flag.Args(), " ")
		}
		printDocuments(value)
	default:
		fmt.Println("Usage: docparse [options] [input]")
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  docparse -input \"112-233-445 95\"")
		fmt.Println("  docparse \"@ 12345678\"")
		fmt.Println("  docparse -corpus testdata/corpus.csv -report report.xlsx")
		os.Exit(1)
	}
}

func printDocuments(input string) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(classification.Parse(input)); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

func printCatalog() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNORMALIZATION\tCHECKSUM\tPATTERN\tTITLE")
	for _, d := range classification.Catalog() {
		pattern := d.Pattern
		if d.Qualification {
			pattern = "@ " + pattern
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", d.Type, d.Normalization, d.Checksum, pattern, d.Title)
	}
	w.Flush()
}

// checkCorpus возвращает false, если хотя бы одна строка не прошла
func checkCorpus(path, reportPath string, verbose bool) bool {
	rows, err := importer.ReadCorpus(path)
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	fmt.Printf("Loaded %d rows from %s\n\n", len(rows), path)

	report := importer.Evaluate(rows)

	shown := report.FailedRows()
	if verbose {
		shown = report.Rows
	}
	for _, r := range shown {
		status := "✓"
		if !r.Passed {
			status = "✗"
		}
		fmt.Printf("%s line %d: %q -> %s\n", status, r.Row.Line, r.Row.Input, importer.FormatDocuments(r.Actual))
		for _, problem := range r.Problems {
			fmt.Printf("    - %s\n", problem)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total: %d, passed: %d, failed: %d (%.2f%%), took %v\n",
		report.Total, report.Passed, report.Failed, report.PassRate(), report.Duration)

	if reportPath != "" {
		if err := importer.ExportReportXLSX(reportPath, report); err != nil {
			log.Fatalf("Failed to export report: %v", err)
		}
		fmt.Printf("Report saved to %s\n", reportPath)
	}

	return report.Failed == 0
}
