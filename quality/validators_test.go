package quality

import (
	"testing"
)

func TestValidateINNLegal(t *testing.T) {
	tests := []struct {
		name string
		inn  string
		want bool
	}{
		{name: "valid 10-digit INN", inn: "7707083893", want: true},
		{name: "valid 10-digit INN second sample", inn: "7736050003", want: true},
		{name: "invalid checksum", inn: "1234567890", want: false},
		{name: "last digit changed", inn: "7707083894", want: false},
		{name: "region 00 rejected", inn: "0012345678", want: false},
		{name: "too short", inn: "770708389", want: false},
		{name: "letters", inn: "770708389a", want: false},
		{name: "empty string", inn: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateINNLegal(tt.inn)
			if got != tt.want {
				t.Errorf("ValidateINNLegal(%q) = %v, want %v", tt.inn, got, tt.want)
			}
		})
	}
}

func TestValidateINNPerson(t *testing.T) {
	tests := []struct {
		name string
		inn  string
		want bool
	}{
		{name: "valid 12-digit INN", inn: "500100732259", want: true},
		{name: "first control digit changed", inn: "500100732249", want: false},
		{name: "second control digit changed", inn: "500100732258", want: false},
		{name: "repeated ones", inn: "111111111117", want: false},
		{name: "invalid checksum", inn: "123456789012", want: false},
		{name: "region 00 rejected", inn: "001001732259", want: false},
		{name: "wrong length", inn: "50010073225", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateINNPerson(tt.inn)
			if got != tt.want {
				t.Errorf("ValidateINNPerson(%q) = %v, want %v", tt.inn, got, tt.want)
			}
		})
	}
}

func TestControlDigits(t *testing.T) {
	if got := INNLegalControlDigit("770708389"); got != 3 {
		t.Errorf("INNLegalControlDigit = %d, want 3", got)
	}

	first, second := INNPersonControlDigits("5001007322")
	if first != 5 || second != 9 {
		t.Errorf("INNPersonControlDigits = %d, %d, want 5, 9", first, second)
	}

	if got := OGRNControlDigit("102770013219"); got != 5 {
		t.Errorf("OGRNControlDigit = %d, want 5", got)
	}
	if got := OGRNIPControlDigit("30450011600015"); got != 7 {
		t.Errorf("OGRNIPControlDigit = %d, want 7", got)
	}
}

func TestControlDigits_AgreeWithValidators(t *testing.T) {
	for _, body := range []string{"123456789", "987654321", "500100732", "010203040"} {
		inn := body + string(rune('0'+INNLegalControlDigit(body)))
		if !ValidateINNLegal(inn) {
			t.Errorf("ValidateINNLegal(%q) = false for generated control digit", inn)
		}
	}

	for _, body := range []string{"1234567890", "5001007322", "7712345678"} {
		first, second := INNPersonControlDigits(body)
		inn := body + string(rune('0'+first)) + string(rune('0'+second))
		if !ValidateINNPerson(inn) {
			t.Errorf("ValidateINNPerson(%q) = false for generated control digits", inn)
		}
	}
}

func TestValidateOGRN(t *testing.T) {
	tests := []struct {
		name string
		ogrn string
		want bool
	}{
		{name: "valid OGRN", ogrn: "1027700132195", want: true},
		{name: "valid OGRN second sample", ogrn: "1037739010891", want: true},
		{name: "remainder 10 maps to 0", ogrn: "1027700132240", want: true},
		{name: "control digit changed", ogrn: "1027700132194", want: false},
		{name: "wrong length", ogrn: "102770013219", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateOGRN(tt.ogrn)
			if got != tt.want {
				t.Errorf("ValidateOGRN(%q) = %v, want %v", tt.ogrn, got, tt.want)
			}
		})
	}
}

func TestValidateOGRNIP(t *testing.T) {
	tests := []struct {
		name   string
		ogrnip string
		want   bool
	}{
		{name: "valid OGRNIP", ogrnip: "304500116000157", want: true},
		{name: "remainder above 9 reduced mod 10", ogrnip: "304500116000180", want: true},
		{name: "control digit changed", ogrnip: "304500116000158", want: false},
		{name: "wrong length", ogrnip: "30450011600015", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateOGRNIP(tt.ogrnip)
			if got != tt.want {
				t.Errorf("ValidateOGRNIP(%q) = %v, want %v", tt.ogrnip, got, tt.want)
			}
		})
	}
}

func TestSNILSControlNumber(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{name: "sum below 100", digits: "112233445", want: 95},
		{name: "sum exactly 100", digits: "050234316", want: 0},
		{name: "sum above 100", digits: "136571200", want: 49},
		{name: "remainder 100 maps to 0", digits: "820981233", want: 0},
		{name: "zero digits", digits: "000000000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SNILSControlNumber(tt.digits)
			if got != tt.want {
				t.Errorf("SNILSControlNumber(%q) = %d, want %d", tt.digits, got, tt.want)
			}
		})
	}
}

func TestValidateSNILS(t *testing.T) {
	tests := []struct {
		name  string
		snils string
		want  bool
	}{
		{name: "valid SNILS", snils: "11223344595", want: true},
		{name: "valid SNILS with sum 100", snils: "05023431600", want: true},
		{name: "valid SNILS with sum 201", snils: "82098123300", want: true},
		{name: "valid SNILS with sum 150", snils: "13657120049", want: true},
		{name: "control changed", snils: "11223344594", want: false},
		{name: "separators not accepted", snils: "112-233-445 95", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSNILS(tt.snils)
			if got != tt.want {
				t.Errorf("ValidateSNILS(%q) = %v, want %v", tt.snils, got, tt.want)
			}
		})
	}
}

func TestFormatSNILS(t *testing.T) {
	if got := FormatSNILS("11223344595"); got != "112-233-445 95" {
		t.Errorf("FormatSNILS() = %q, want %q", got, "112-233-445 95")
	}
	if got := FormatSNILS("123"); got != "123" {
		t.Errorf("FormatSNILS() should keep malformed input, got %q", got)
	}
}

func TestValidatePlate(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		want  bool
	}{
		{name: "valid plate", plate: "А123ВВ01", want: true},
		{name: "valid plate three digit region", plate: "Х777ОР199", want: true},
		{name: "number all zeros", plate: "А000ВВ77", want: false},
		{name: "region all zeros", plate: "А123ВВ00", want: false},
		{name: "region 00 with third digit", plate: "А123ВВ001", want: false},
		{name: "single nonzero digit is enough", plate: "А001ВВ10", want: true},
		{name: "too short", plate: "А12ВВ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePlate(tt.plate)
			if got != tt.want {
				t.Errorf("ValidatePlate(%q) = %v, want %v", tt.plate, got, tt.want)
			}
		})
	}
}

func TestValidateVIN(t *testing.T) {
	tests := []struct {
		name string
		vin  string
		want bool
	}{
		{name: "valid VIN", vin: "XTA210990Y2765432", want: true},
		{name: "valid VIN digits only", vin: "12345678901234567", want: true},
		{name: "contains I", vin: "XTA21099IY2765432", want: false},
		{name: "contains O", vin: "XTA21099OY2765432", want: false},
		{name: "contains Q", vin: "QTA210990Y2765432", want: false},
		{name: "wrong length", vin: "XTA210990Y276543", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateVIN(tt.vin)
			if got != tt.want {
				t.Errorf("ValidateVIN(%q) = %v, want %v", tt.vin, got, tt.want)
			}
		})
	}
}

func TestAlwaysValid(t *testing.T) {
	if !AlwaysValid("4509123456") {
		t.Error("AlwaysValid should accept any matched value")
	}
}
