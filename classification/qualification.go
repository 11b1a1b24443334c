package classification

import (
	"regexp"
	"slices"

	"docparser/normalization"
)

// Квалификационные форматы T1 и T2 синтетические: они проверяют качество
// классификатора и не соответствуют реальным документам.
var qualificationCatalog = []Descriptor{
	{
		Type:     DocTypeT1,
		Pattern:  regexp.MustCompile(`^\d{8,9}$`),
		Variant:  normalization.VariantQualification,
		Validate: validateT1,
		Checksum: true,
	},
	{
		Type:     DocTypeT2,
		Pattern:  regexp.MustCompile(`^[0-9A-Z]{8}$`),
		Variant:  normalization.VariantQualification,
		Validate: validateT2,
		Checksum: true,
	},
}

// ClassifyQualification распознает значение квалификационного раздела
// (без префикса) и ставит валидные результаты первыми.
func ClassifyQualification(value string) []ExtractedDocument {
	docs := classifyWith(qualificationCatalog, normalization.Prepare(value))
	return RankValidFirst(docs)
}

// validateT1 ровно одно из условий: длина 9 или цифры 5 и 7 на позициях 4 и 7
func validateT1(value string) bool {
	return (len(value) == 9) != (value[4] == '5' && value[7] == '7')
}

// validateT2 хотя бы одна пятерка на позициях 4..7
func validateT2(value string) bool {
	for i := 4; i <= 7; i++ {
		if value[i] == '5' {
			return true
		}
	}
	return false
}

// RankValidFirst возвращает копию списка, в которой валидные результаты
// идут раньше невалидных. Порядок внутри групп сохраняется.
func RankValidFirst(docs []ExtractedDocument) []ExtractedDocument {
	ranked := slices.Clone(docs)
	slices.SortStableFunc(ranked, func(a, b ExtractedDocument) int {
		switch {
		case a.IsValid == b.IsValid:
			return 0
		case a.IsValid:
			return -1
		default:
			return 1
		}
	})
	return ranked
}
