package quality

// WeightedSum возвращает сумму произведений цифр на весовые коэффициенты.
// Длина digits должна быть не меньше длины weights.
func WeightedSum(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digitAt(digits, i) * w
	}
	return sum
}

// WeightedControlDigit считает взвешенную сумму и сводит её к контрольной
// цифре: sum % modulus % 10.
func WeightedControlDigit(digits string, weights []int, modulus int) int {
	return WeightedSum(digits, weights) % modulus % 10
}

// NumericControlDigit интерпретирует digits как число и возвращает
// value % modulus % 10. Остаток накапливается по ходу, поэтому длина строки
// не ограничена разрядностью int64.
func NumericControlDigit(digits string, modulus int) int {
	remainder := 0
	for i := 0; i < len(digits); i++ {
		remainder = (remainder*10 + digitAt(digits, i)) % modulus
	}
	return remainder % 10
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

// isDigits проверяет, что строка состоит ровно из n ASCII-цифр
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
