package tools

import (
	"math"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
)

// dateLayouts - допустимые форматы дат в параметрах
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func missing(name string) error {
	return &validators.InvalidInputError{Field: name, Reason: "параметр отсутствует или имеет неверный тип"}
}

func floatParam(params map[string]interface{}, name string) (float64, error) {
	v, ok := params[name].(float64)
	if !ok {
		return 0, missing(name)
	}
	return v, nil
}

func optFloatParam(params map[string]interface{}, name string, def float64) (float64, error) {
	if _, ok := params[name]; !ok {
		return def, nil
	}
	return floatParam(params, name)
}

func intParam(params map[string]interface{}, name string) (int, error) {
	v, err := floatParam(params, name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &validators.InvalidInputError{Field: name, Value: v, Reason: "ожидается целое число"}
	}
	return int(v), nil
}

func stringParam(params map[string]interface{}, name string) (string, error) {
	v, ok := params[name].(string)
	if !ok || v == "" {
		return "", missing(name)
	}
	return v, nil
}

func optStringParam(params map[string]interface{}, name string) (string, error) {
	if _, ok := params[name]; !ok {
		return "", nil
	}
	return stringParam(params, name)
}

func parseDate(name, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &validators.InvalidInputError{Field: name, Reason: "ожидается дата в формате RFC3339 или YYYY-MM-DD"}
}

// nowParam возвращает момент расчёта: параметр "now" или текущее время
func nowParam(params map[string]interface{}) (time.Time, error) {
	raw, err := optStringParam(params, "now")
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Now(), nil
	}
	return parseDate("now", raw)
}
