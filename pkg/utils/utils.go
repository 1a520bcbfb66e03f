package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет сумму до копеек (2 знака после запятой).
// Округление идёт через decimal, чтобы 1.005 давало 1.01, а не 1.00.
func Round2(value float64) float64 {
	if !IsFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// ClampZero возвращает 0 для отрицательных значений
func ClampZero(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// ApproxEqual сравнивает два числа с абсолютной погрешностью eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
