package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"docparser/classification"
	"docparser/importer"
)

func main() {
	var (
		output   = flag.String("output", "", "Файл для записи корпуса (по умолчанию stdout)")
		count    = flag.Int("count", 10, "Количество пар (валидное + испорченное) на формат")
		seed     = flag.Int64("seed", 0, "Seed генератора")
		typesArg = flag.String("types", "", "Форматы через запятую, например SNILS,VIN (по умолчанию все)")
	)
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("count must be positive, got %d", *count)
	}

	var only []classification.DocumentType
	for _, name := range strings.Split(*typesArg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		docType, ok := classification.ParseDocumentType(name)
		if !ok {
			log.Fatalf("Unknown document type: %s", name)
		}
		only = append(only, docType)
	}

	rows := importer.GenerateSamples(*seed, *count, only...)

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := importer.WriteCSV(out, rows); err != nil {
		log.Fatalf("Failed to write samples: %v", err)
	}

	if *output != "" {
		fmt.Printf("Generated %d samples to %s\n", len(rows), *output)
	}
}
