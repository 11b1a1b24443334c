package quality

// Весовые коэффициенты контрольных сумм
var (
	innLegalWeights        = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	innPersonFirstWeights  = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	innPersonSecondWeights = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	snilsWeights           = []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
)

// Длины номеров, для которых определены проверки
const (
	INNLegalLength  = 10
	INNPersonLength = 12
	OGRNLength      = 13
	OGRNIPLength    = 15
	SNILSLength     = 11
	VINLength       = 17
)

// ValidateINNLegal проверяет контрольную сумму 10-значного ИНН юридического лица
func ValidateINNLegal(inn string) bool {
	if !isDigits(inn, INNLegalLength) || hasEmptyRegion(inn) {
		return false
	}

	return INNLegalControlDigit(inn[:9]) == digitAt(inn, 9)
}

// INNLegalControlDigit контрольная цифра ИНН ЮЛ по первым девяти цифрам
func INNLegalControlDigit(digits string) int {
	return WeightedControlDigit(digits, innLegalWeights, 11)
}

// INNPersonControlDigits обе контрольные цифры ИНН ФЛ по первым десяти цифрам.
// Вторая цифра считается с учетом первой.
func INNPersonControlDigits(digits string) (first, second int) {
	first = WeightedControlDigit(digits, innPersonFirstWeights, 11)
	last := len(innPersonSecondWeights) - 1
	sum := WeightedSum(digits, innPersonSecondWeights[:last]) + first*innPersonSecondWeights[last]
	return first, sum % 11 % 10
}

// ValidateINNPerson проверяет обе контрольные цифры 12-значного ИНН физического лица
func ValidateINNPerson(inn string) bool {
	if !isDigits(inn, INNPersonLength) || hasEmptyRegion(inn) {
		return false
	}

	first, second := INNPersonControlDigits(inn[:10])
	return first == digitAt(inn, 10) && second == digitAt(inn, 11)
}

// ValidateOGRN проверяет контрольную цифру 13-значного ОГРН
func ValidateOGRN(ogrn string) bool {
	if !isDigits(ogrn, OGRNLength) {
		return false
	}

	return OGRNControlDigit(ogrn[:12]) == digitAt(ogrn, 12)
}

// OGRNControlDigit контрольная цифра ОГРН по первым двенадцати цифрам
func OGRNControlDigit(digits string) int {
	return NumericControlDigit(digits, 11)
}

// ValidateOGRNIP проверяет контрольную цифру 15-значного ОГРНИП
func ValidateOGRNIP(ogrnip string) bool {
	if !isDigits(ogrnip, OGRNIPLength) {
		return false
	}

	return OGRNIPControlDigit(ogrnip[:14]) == digitAt(ogrnip, 14)
}

// OGRNIPControlDigit контрольная цифра ОГРНИП по первым четырнадцати цифрам
func OGRNIPControlDigit(digits string) int {
	return NumericControlDigit(digits, 13)
}

// SNILSControlNumber вычисляет контрольное число СНИЛС по первым девяти цифрам
func SNILSControlNumber(digits string) int {
	sum := WeightedSum(digits, snilsWeights)

	switch {
	case sum < 100:
		return sum
	case sum == 100:
		return 0
	}

	control := sum % 101
	if control == 100 {
		return 0
	}
	return control
}

// ValidateSNILS проверяет контрольное число СНИЛС (11 цифр без разделителей)
func ValidateSNILS(snils string) bool {
	if !isDigits(snils, SNILSLength) {
		return false
	}

	tail := digitAt(snils, 9)*10 + digitAt(snils, 10)
	return SNILSControlNumber(snils[:9]) == tail
}

// FormatSNILS приводит 11 цифр СНИЛС к виду NNN-NNN-NNN NN
func FormatSNILS(snils string) string {
	if !isDigits(snils, SNILSLength) {
		return snils
	}
	return snils[0:3] + "-" + snils[3:6] + "-" + snils[6:9] + " " + snils[9:11]
}

// ValidatePlate проверяет ГРЗ: номер (символы 1..3) и первые две цифры
// региона (символы 6..7) не должны состоять из одних нулей.
// Буквы должны быть уже приведены к кириллице.
func ValidatePlate(plate string) bool {
	runes := []rune(plate)
	if len(runes) < 8 {
		return false
	}

	return !allZero(runes[1:4]) && !allZero(runes[6:8])
}

// ValidateVIN проверяет, что VIN не содержит букв I, O и Q
func ValidateVIN(vin string) bool {
	if len(vin) != VINLength {
		return false
	}

	for i := 0; i < len(vin); i++ {
		switch vin[i] {
		case 'I', 'O', 'Q':
			return false
		}
	}
	return true
}

// AlwaysValid используется для документов без контрольной суммы (паспорт, ВУ)
func AlwaysValid(string) bool {
	return true
}

// hasEmptyRegion код региона 00 в ИНН не выдается
func hasEmptyRegion(inn string) bool {
	return inn[0] == '0' && inn[1] == '0'
}

func allZero(runes []rune) bool {
	for _, r := range runes {
		if r != '0' {
			return false
		}
	}
	return true
}
