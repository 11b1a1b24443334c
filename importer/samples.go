package importer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"docparser/classification"
	"docparser/quality"
)

const (
	plateLetters = "АВЕКМНОРСТУХ"
	vinAlphabet  = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
	upperAlnum   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// sampleGenerator генерирует пару строк корпуса: корректную и испорченную
type sampleGenerator func(f *gofakeit.Faker) (valid, broken CorpusRow)

var sampleGenerators = []struct {
	docType classification.DocumentType
	gen     sampleGenerator
}{
	{classification.DocTypeINNUL, innLegalSample},
	{classification.DocTypeINNFL, innPersonSample},
	{classification.DocTypePassportRF, passportSample},
	{classification.DocTypeDriverLicense, driverLicenseSample},
	{classification.DocTypeGRZ, plateSample},
	{classification.DocTypeVIN, vinSample},
	{classification.DocTypeOGRN, ogrnSample},
	{classification.DocTypeOGRNIP, ogrnipSample},
	{classification.DocTypeSNILS, snilsSample},
	{classification.DocTypeT1, t1Sample},
	{classification.DocTypeT2, t2Sample},
}

// GenerateSamples строит синтетический корпус: для каждого формата perType
// корректных значений и столько же значений с нарушенной проверкой.
// Пустой only означает все форматы. При одинаковом seed результат воспроизводится.
func GenerateSamples(seed int64, perType int, only ...classification.DocumentType) []CorpusRow {
	faker := gofakeit.New(seed)

	rows := make([]CorpusRow, 0, len(sampleGenerators)*perType*2+1)
	for _, g := range sampleGenerators {
		if len(only) > 0 && !slices.Contains(only, g.docType) {
			continue
		}
		for i := 0; i < perType; i++ {
			valid, broken := g.gen(faker)
			rows = append(rows, valid, broken)
		}
	}

	rows = append(rows, CorpusRow{
		Input:    faker.LetterN(12),
		Expected: []Expectation{{Type: classification.DocTypeNotFound}},
		Comment:  "шум",
	})
	return rows
}

func expect(t classification.DocumentType, valid bool) Expectation {
	return Expectation{Type: t, Valid: &valid}
}

func sample(input, comment string, exps ...Expectation) CorpusRow {
	return CorpusRow{Input: input, Expected: exps, Comment: comment}
}

// corruptLast заменяет последнюю цифру на соседнюю, ломая контрольную сумму
func corruptLast(s string) string {
	last := int(s[len(s)-1] - '0')
	return s[:len(s)-1] + strconv.Itoa((last+1)%10)
}

// region две цифры кода региона без 00
func region(f *gofakeit.Faker) string {
	return fmt.Sprintf("%02d", f.Number(1, 99))
}

func innLegalSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	body := region(f) + f.Numerify("#######")
	inn := body + strconv.Itoa(quality.INNLegalControlDigit(body))
	bad := corruptLast(inn)

	valid := sample(inn, "ИНН ЮЛ",
		expect(classification.DocTypeINNUL, true),
		expect(classification.DocTypePassportRF, true),
		expect(classification.DocTypeDriverLicense, true))
	broken := sample(bad, "ИНН ЮЛ, неверная контрольная цифра",
		expect(classification.DocTypeINNUL, false),
		expect(classification.DocTypePassportRF, true),
		expect(classification.DocTypeDriverLicense, true))
	return valid, broken
}

func innPersonSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	body := region(f) + f.Numerify("########")
	first, second := quality.INNPersonControlDigits(body)
	inn := body + strconv.Itoa(first) + strconv.Itoa(second)

	return sample(inn, "ИНН ФЛ", expect(classification.DocTypeINNFL, true)),
		sample(corruptLast(inn), "ИНН ФЛ, неверная контрольная цифра", expect(classification.DocTypeINNFL, false))
}

func passportSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	input := f.Numerify("#### ######")
	inn := Expectation{Type: classification.DocTypeINNUL}

	// Серия и номер паспорта не проверяются; вторая строка записана без пробела
	spaced := sample(input, "паспорт", inn,
		expect(classification.DocTypePassportRF, true),
		expect(classification.DocTypeDriverLicense, true))
	joined := sample(strings.ReplaceAll(input, " ", ""), "паспорт без пробела", inn,
		expect(classification.DocTypePassportRF, true),
		expect(classification.DocTypeDriverLicense, true))
	return spaced, joined
}

func driverLicenseSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	letters := randomFrom(f, plateLetters, 2)
	input := f.Numerify("##") + " " + letters + " " + f.Numerify("######")

	// Латинская буква вне общего набора не проходит паттерн ВУ
	broken := f.Numerify("##") + " QZ " + f.Numerify("######")

	return sample(input, "ВУ", expect(classification.DocTypeDriverLicense, true)),
		sample(broken, "ВУ с недопустимыми буквами", Expectation{Type: classification.DocTypeNotFound})
}

func plateSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	number := fmt.Sprintf("%03d", f.Number(1, 999))
	letters := randomFrom(f, plateLetters, 3)
	reg := region(f)
	if f.Bool() {
		reg += strconv.Itoa(f.Number(0, 9))
	}

	plate := string([]rune(letters)[:1]) + number + string([]rune(letters)[1:]) + reg
	broken := string([]rune(letters)[:1]) + "000" + string([]rune(letters)[1:]) + reg

	return sample(plate, "ГРЗ", expect(classification.DocTypeGRZ, true)),
		sample(broken, "ГРЗ с нулевым номером", expect(classification.DocTypeGRZ, false))
}

func vinSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	vin := randomFrom(f, vinAlphabet, 17)
	pos := f.Number(0, 16)
	broken := vin[:pos] + string("IOQ"[f.Number(0, 2)]) + vin[pos+1:]

	return sample(vin, "VIN", expect(classification.DocTypeVIN, true)),
		sample(broken, "VIN с запрещенной буквой", expect(classification.DocTypeVIN, false))
}

func ogrnSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	body := f.RandomString([]string{"1", "5"}) + f.Numerify("###########")
	ogrn := body + strconv.Itoa(quality.OGRNControlDigit(body))

	return sample(ogrn, "ОГРН", expect(classification.DocTypeOGRN, true)),
		sample(corruptLast(ogrn), "ОГРН, неверная контрольная цифра", expect(classification.DocTypeOGRN, false))
}

func ogrnipSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	body := "3" + f.Numerify("#############")
	ogrnip := body + strconv.Itoa(quality.OGRNIPControlDigit(body))

	return sample(ogrnip, "ОГРНИП", expect(classification.DocTypeOGRNIP, true)),
		sample(corruptLast(ogrnip), "ОГРНИП, неверная контрольная цифра", expect(classification.DocTypeOGRNIP, false))
}

func snilsSample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	body := f.Numerify("#########")
	control := quality.SNILSControlNumber(body)

	valid := quality.FormatSNILS(body + fmt.Sprintf("%02d", control))
	broken := quality.FormatSNILS(body + fmt.Sprintf("%02d", (control+1)%100))

	return sample(valid, "СНИЛС", expect(classification.DocTypeSNILS, true)),
		sample(broken, "СНИЛС, неверное контрольное число", expect(classification.DocTypeSNILS, false))
}

// t1Sample девять цифр; валидно, если не выполнено условие "5 на 4-й и 7 на 7-й позиции"
func t1Sample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	digits := []byte(f.Numerify("#########"))
	if digits[4] == '5' && digits[7] == '7' {
		digits[7] = '8'
	}
	broken := []byte(f.Numerify("#########"))
	broken[4], broken[7] = '5', '7'

	return sample("@ "+string(digits), "T1", expect(classification.DocTypeT1, true)),
		sample("@ "+string(broken), "T1, запрещенная комбинация", expect(classification.DocTypeT1, false))
}

// t2Sample первый символ - буква, чтобы значение не совпадало с T1
func t2Sample(f *gofakeit.Faker) (CorpusRow, CorpusRow) {
	head := randomFrom(f, "ABCDEFGHJKLMNPRSTUVWXYZ", 1) + randomFrom(f, upperAlnum, 3)

	tail := []byte(randomFrom(f, "0123468ABCDEFXYZ", 4))
	tail[f.Number(0, 3)] = '5'
	broken := randomFrom(f, "0123468ABCDEFXYZ", 4)

	return sample("@ "+head+string(tail), "T2", expect(classification.DocTypeT2, true)),
		sample("@ "+head+broken, "T2 без пятерки", expect(classification.DocTypeT2, false))
}

// randomFrom выбирает n случайных символов алфавита
func randomFrom(f *gofakeit.Faker, alphabet string, n int) string {
	runes := []rune(alphabet)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[f.Number(0, len(runes)-1)])
	}
	return b.String()
}
