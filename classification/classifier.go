package classification

import (
	"strings"

	"docparser/normalization"
)

// QualificationPrefix префикс входных строк квалификационного раздела
const QualificationPrefix = "@ "

// Classify распознает строку по каталогу документов.
//
// Для каждого подошедшего формата возвращается отдельный результат в порядке
// каталога. Если не подошел ни один формат, возвращается единственный
// результат NOT_FOUND. Функция чистая и безопасна для конкурентного вызова.
func Classify(input string) []ExtractedDocument {
	return classifyWith(documentCatalog, normalization.Prepare(input))
}

// Parse точка входа парсера: строки с префиксом "@ " идут в квалификационный
// раздел, остальные распознаются как документы.
func Parse(input string) []ExtractedDocument {
	if value, ok := strings.CutPrefix(input, QualificationPrefix); ok {
		return ClassifyQualification(value)
	}
	return Classify(input)
}

func classifyWith(descriptors []Descriptor, variants normalization.Variants) []ExtractedDocument {
	var docs []ExtractedDocument
	for _, d := range descriptors {
		if doc, ok := d.match(variants); ok {
			docs = append(docs, doc)
		}
	}

	if len(docs) == 0 {
		return []ExtractedDocument{NotFound()}
	}
	return docs
}
