package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/pkg/utils"
)

// ErrInvalidInput сопоставляется с любым *InvalidInputError через errors.Is
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError описывает недопустимое значение обязательного параметра
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s (получено %v)", e.Field, e.Reason, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field string, value float64, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return invalid(name, value, "значение не является конечным числом")
	}
	if value < minInclusive {
		return invalid(name, value, "значение должно быть ≥ %v", minInclusive)
	}
	if value > maxInclusive {
		return invalid(name, value, "значение слишком велико (>%v)", maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return invalid(name, float64(value), "значение должно быть в диапазоне [%d; %d]", minInclusive, maxInclusive)
	}
	return nil
}

// Finite проверяет, что результат расчета конечен
func Finite(name string, value float64) error {
	if !utils.IsFinite(value) {
		return invalid(name, value, "результат расчета выходит за пределы представимых чисел")
	}
	return nil
}

// NonNegative проверяет, что значение конечное и не меньше нуля
func NonNegative(name string, value float64) error {
	if !utils.IsFinite(value) {
		return invalid(name, value, "значение не является конечным числом")
	}
	if value < 0 {
		return invalid(name, value, "значение не может быть отрицательным")
	}
	return nil
}

// Positive проверяет, что значение конечное и строго больше нуля
func Positive(name string, value float64) error {
	if !utils.IsFinite(value) {
		return invalid(name, value, "значение не является конечным числом")
	}
	if value <= 0 {
		return invalid(name, value, "значение должно быть больше нуля")
	}
	return nil
}

// PositiveInt проверяет, что целое строго больше нуля
func PositiveInt(name string, value int) error {
	if value <= 0 {
		return invalid(name, float64(value), "значение должно быть больше нуля")
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 0.0, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("tenure_months", months, 1, cfg.MaxMonths)
}

// CheckAmount проверяет неотрицательную денежную сумму
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxAmount)
}

// CheckTarget проверяет целевую сумму цели
func CheckTarget(cfg *config.Config, target float64) error {
	if err := Positive("target_amount", target); err != nil {
		return err
	}
	return ValidatePositiveNumber("target_amount", target, 0.0, cfg.MaxAmount)
}
