package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant вид нормализованной строки, который читает паттерн каталога
type Variant int

const (
	// VariantSpacesStripped строка без пробельных символов
	VariantSpacesStripped Variant = iota
	// VariantSeparatorsStripped строка без пробелов и дефисов (СНИЛС)
	VariantSeparatorsStripped
	// VariantPlateFolded строка без пробелов, латиница заменена на кириллицу (ГРЗ)
	VariantPlateFolded
	// VariantQualification строка без символов '_' и '-' (квалификационные форматы)
	VariantQualification
)

// String возвращает имя варианта для логов и отладки
func (v Variant) String() string {
	switch v {
	case VariantSpacesStripped:
		return "spaces_stripped"
	case VariantSeparatorsStripped:
		return "separators_stripped"
	case VariantPlateFolded:
		return "plate_folded"
	case VariantQualification:
		return "qualification"
	default:
		return "unknown"
	}
}

// plateLookalikes латинские буквы, совпадающие по начертанию с кириллицей на номерных знаках
var plateLookalikes = strings.NewReplacer(
	"A", "А",
	"B", "В",
	"E", "Е",
	"K", "К",
	"M", "М",
	"H", "Н",
	"O", "О",
	"P", "Р",
	"C", "С",
	"T", "Т",
	"Y", "У",
	"X", "Х",
)

// StripSpaces удаляет все пробельные символы Unicode: пробел, табуляцию,
// перевод строки, неразрывный пробел
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripSpacesAndHyphens удаляет пробелы и дефисы
func StripSpacesAndHyphens(s string) string {
	return strings.ReplaceAll(StripSpaces(s), "-", "")
}

// FoldPlateLookalikes переводит строку в верхний регистр и заменяет латинские
// двойники на кириллические буквы номерного знака.
func FoldPlateLookalikes(s string) string {
	// cases.Caser хранит состояние, поэтому создается на каждый вызов
	upper := cases.Upper(language.Russian).String(s)
	return plateLookalikes.Replace(upper)
}

// StripQualificationNoise удаляет символы '_' и '-'
func StripQualificationNoise(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// Variants набор нормализованных представлений одной входной строки
type Variants struct {
	Raw                string
	SpacesStripped     string
	SeparatorsStripped string
	PlateFolded        string
	Qualification      string
}

// Prepare вычисляет все варианты нормализации для входной строки
func Prepare(raw string) Variants {
	stripped := StripSpaces(raw)
	return Variants{
		Raw:                raw,
		SpacesStripped:     stripped,
		SeparatorsStripped: StripSpacesAndHyphens(raw),
		PlateFolded:        FoldPlateLookalikes(stripped),
		Qualification:      StripQualificationNoise(raw),
	}
}

// Get возвращает представление нужного вида
func (v Variants) Get(kind Variant) string {
	switch kind {
	case VariantSpacesStripped:
		return v.SpacesStripped
	case VariantSeparatorsStripped:
		return v.SeparatorsStripped
	case VariantPlateFolded:
		return v.PlateFolded
	case VariantQualification:
		return v.Qualification
	default:
		return v.Raw
	}
}
