package classification

import (
	"regexp"

	"docparser/normalization"
	"docparser/quality"
)

// Descriptor описание формата документа: паттерн распознавания и проверка.
//
// Паттерн обязан гарантировать предусловия Validate и Format (длину и класс
// символов): проверки индексируют строку без дополнительных проверок границ.
type Descriptor struct {
	Type     DocumentType
	Pattern  *regexp.Regexp
	Variant  normalization.Variant
	Validate func(value string) bool
	// Format приводит совпавшее значение к каноническому виду, nil - без изменений
	Format func(value string) string
	// Checksum true, если проверка содержит контрольную сумму, а не только формат
	Checksum bool
}

// Буквы, общие для кириллицы и латиницы, допустимые на номерных знаках
const plateLetters = "АВЕКМНОРСТУХ"

var documentCatalog = []Descriptor{
	{
		Type:     DocTypeINNUL,
		Pattern:  regexp.MustCompile(`^\d{10}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.ValidateINNLegal,
		Checksum: true,
	},
	{
		Type:     DocTypeINNFL,
		Pattern:  regexp.MustCompile(`^\d{12}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.ValidateINNPerson,
		Checksum: true,
	},
	{
		// серия 4 цифры + номер 6 цифр
		Type:     DocTypePassportRF,
		Pattern:  regexp.MustCompile(`^\d{10}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.AlwaysValid,
	},
	{
		// буквы серии ВУ, как и на номерном знаке, бывают набраны латиницей
		Type:     DocTypeDriverLicense,
		Pattern:  regexp.MustCompile(`^\d{2}[0-9` + plateLetters + `]{2}\d{6}$`),
		Variant:  normalization.VariantPlateFolded,
		Validate: quality.AlwaysValid,
	},
	{
		Type:     DocTypeGRZ,
		Pattern:  regexp.MustCompile(`^[` + plateLetters + `]\d{3}[` + plateLetters + `]{2}\d{2,3}$`),
		Variant:  normalization.VariantPlateFolded,
		Validate: quality.ValidatePlate,
		Checksum: true,
	},
	{
		Type:     DocTypeVIN,
		Pattern:  regexp.MustCompile(`^[A-Z0-9]{17}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.ValidateVIN,
		Checksum: true,
	},
	{
		Type:     DocTypeOGRN,
		Pattern:  regexp.MustCompile(`^\d{13}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.ValidateOGRN,
		Checksum: true,
	},
	{
		Type:     DocTypeOGRNIP,
		Pattern:  regexp.MustCompile(`^\d{15}$`),
		Variant:  normalization.VariantSpacesStripped,
		Validate: quality.ValidateOGRNIP,
		Checksum: true,
	},
	{
		Type:     DocTypeSNILS,
		Pattern:  regexp.MustCompile(`^\d{11}$`),
		Variant:  normalization.VariantSeparatorsStripped,
		Validate: quality.ValidateSNILS,
		Format:   quality.FormatSNILS,
		Checksum: true,
	},
}

// DescriptorInfo описание формата для API и CLI
type DescriptorInfo struct {
	Type          DocumentType `json:"doc_type"`
	Title         string       `json:"title"`
	Pattern       string       `json:"pattern"`
	Normalization string       `json:"normalization"`
	Checksum      bool         `json:"checksum"`
	Qualification bool         `json:"qualification"`
}

// Catalog возвращает описание всех форматов в порядке проверки
func Catalog() []DescriptorInfo {
	infos := make([]DescriptorInfo, 0, len(documentCatalog)+len(qualificationCatalog))
	for _, d := range documentCatalog {
		infos = append(infos, d.info(false))
	}
	for _, d := range qualificationCatalog {
		infos = append(infos, d.info(true))
	}
	return infos
}

func (d Descriptor) info(qualification bool) DescriptorInfo {
	return DescriptorInfo{
		Type:          d.Type,
		Title:         d.Type.Title(),
		Pattern:       d.Pattern.String(),
		Normalization: d.Variant.String(),
		Checksum:      d.Checksum,
		Qualification: qualification,
	}
}

// match применяет дескриптор к подготовленной строке
func (d Descriptor) match(variants normalization.Variants) (ExtractedDocument, bool) {
	candidate := variants.Get(d.Variant)
	if !d.Pattern.MatchString(candidate) {
		return ExtractedDocument{}, false
	}

	value := candidate
	if d.Format != nil {
		value = d.Format(candidate)
	}

	return ExtractedDocument{
		DocType:                d.Type,
		Value:                  value,
		IsValidationApplicable: true,
		IsValid:                d.Validate(candidate),
	}, true
}
