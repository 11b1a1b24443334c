package classification

// DocumentType тип документа из каталога
type DocumentType string

const (
	DocTypeINNUL         DocumentType = "INN_UL"         // ИНН юридического лица, 10 цифр
	DocTypeINNFL         DocumentType = "INN_FL"         // ИНН физического лица, 12 цифр
	DocTypePassportRF    DocumentType = "PASSPORT_RF"    // Паспорт гражданина РФ
	DocTypeDriverLicense DocumentType = "DRIVER_LICENSE" // Водительское удостоверение
	DocTypeGRZ           DocumentType = "GRZ"            // Государственный регистрационный знак ТС
	DocTypeVIN           DocumentType = "VIN"            // Идентификационный номер ТС
	DocTypeOGRN          DocumentType = "OGRN"           // ОГРН юридического лица, 13 цифр
	DocTypeOGRNIP        DocumentType = "OGRNIP"         // ОГРНИП, 15 цифр
	DocTypeSNILS         DocumentType = "SNILS"          // СНИЛС
	DocTypeT1            DocumentType = "T1"             // Квалификационный формат T1
	DocTypeT2            DocumentType = "T2"             // Квалификационный формат T2
	DocTypeNotFound      DocumentType = "NOT_FOUND"      // Ничего не найдено
)

var documentTitles = map[DocumentType]string{
	DocTypeINNUL:         "ИНН юридического лица",
	DocTypeINNFL:         "ИНН физического лица",
	DocTypePassportRF:    "Паспорт гражданина РФ",
	DocTypeDriverLicense: "Водительское удостоверение",
	DocTypeGRZ:           "Государственный регистрационный знак",
	DocTypeVIN:           "Идентификационный номер ТС (VIN)",
	DocTypeOGRN:          "ОГРН",
	DocTypeOGRNIP:        "ОГРНИП",
	DocTypeSNILS:         "СНИЛС",
	DocTypeT1:            "Квалификационный формат T1",
	DocTypeT2:            "Квалификационный формат T2",
	DocTypeNotFound:      "Документ не распознан",
}

// Title возвращает человекочитаемое название типа
func (t DocumentType) Title() string {
	if title, ok := documentTitles[t]; ok {
		return title
	}
	return string(t)
}

// IsKnown проверяет, что тип есть в перечислении
func (t DocumentType) IsKnown() bool {
	_, ok := documentTitles[t]
	return ok
}

// ParseDocumentType разбирает строковое имя типа
func ParseDocumentType(s string) (DocumentType, bool) {
	t := DocumentType(s)
	return t, t.IsKnown()
}

// ExtractedDocument результат распознавания одного формата
type ExtractedDocument struct {
	DocType                DocumentType `json:"doc_type"`
	Value                  string       `json:"value"`
	IsValidationApplicable bool         `json:"is_validation_applicable"`
	IsValid                bool         `json:"is_valid"`
}

// NotFound результат для строки, не подошедшей ни под один формат
func NotFound() ExtractedDocument {
	return ExtractedDocument{DocType: DocTypeNotFound}
}
