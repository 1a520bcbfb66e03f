// Package goals считает прогресс и необходимые ежемесячные взносы по финансовым целям.
package goals

import (
	"math"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
)

// DaysPerMonth - средняя длина месяца, используемая для перевода срока в месяцы
const DaysPerMonth = 30.44

// Progress возвращает процент накопления цели. Значение не ограничивается
// и может превышать 100.
func Progress(goal models.Goal) (float64, error) {
	if err := validators.Positive("target_amount", goal.TargetAmount); err != nil {
		return 0, err
	}
	return goal.CurrentAmount / goal.TargetAmount * 100, nil
}

// MonthsLeft возвращает дробное число месяцев до даты цели, не меньше нуля
func MonthsLeft(targetDate, now time.Time) float64 {
	days := targetDate.Sub(now).Hours() / 24
	return math.Max(0, days/DaysPerMonth)
}

// MonthlyRequirement рассчитывает ежемесячный взнос, нужный чтобы к дате цели
// накопить целевую сумму с поправкой на инфляцию, учитывая рост уже накопленного
// под ожидаемую доходность. Для просроченной цели возвращается 0.
func MonthlyRequirement(goal models.Goal, inflationPercent float64, now time.Time) (float64, error) {
	if err := validateGoal(goal); err != nil {
		return 0, err
	}
	if err := validators.ValidatePositiveNumber("inflation_rate", inflationPercent, -100, 1e6); err != nil {
		return 0, err
	}

	monthsLeft := MonthsLeft(goal.TargetDate, now)
	if monthsLeft == 0 {
		return 0, nil
	}

	inflation := inflationPercent / 100
	monthlyRate := math.Pow(1+goal.ExpectedReturn/100, 1.0/12) - 1

	inflatedTarget := goal.TargetAmount * math.Pow(1+inflation, monthsLeft/12)
	if err := validators.Finite("inflation_rate", inflatedTarget); err != nil {
		return 0, err
	}
	growth := math.Pow(1+monthlyRate, monthsLeft)
	if err := validators.Finite("expected_return", growth); err != nil {
		return 0, err
	}
	required := inflatedTarget - goal.CurrentAmount*growth

	var monthly float64
	if monthlyRate == 0 {
		monthly = required / monthsLeft
	} else {
		monthly = required / ((growth - 1) / monthlyRate)
	}
	if err := validators.Finite("monthly_requirement", monthly); err != nil {
		return 0, err
	}

	return math.Max(0, monthly), nil
}

// IsAchievable сообщает, покрывает ли текущий взнос цели необходимый
func IsAchievable(goal models.Goal, inflationPercent float64, now time.Time) (bool, error) {
	required, err := MonthlyRequirement(goal, inflationPercent, now)
	if err != nil {
		return false, err
	}
	return required <= goal.MonthlyContribution, nil
}

func validateGoal(goal models.Goal) error {
	if err := validators.Positive("target_amount", goal.TargetAmount); err != nil {
		return err
	}
	if err := validators.ValidatePositiveNumber("current_amount", goal.CurrentAmount, math.Inf(-1), math.MaxFloat64); err != nil {
		return err
	}
	return validators.ValidatePositiveNumber("expected_return", goal.ExpectedReturn, -99.99, 1e6)
}

// Evaluation - рассчитанные показатели одной цели. Ошибка одной цели
// фиксируется в Error и не мешает расчёту остальных.
type Evaluation struct {
	GoalID             string  `json:"goalId"`
	Name               string  `json:"name"`
	Progress           float64 `json:"progress"`
	MonthsLeft         float64 `json:"monthsLeft"`
	MonthlyRequirement float64 `json:"monthlyRequirement"`
	Achievable         bool    `json:"achievable"`
	Error              string  `json:"error,omitempty"`
}

// Evaluate рассчитывает показатели для каждой цели по снимку ставок
func Evaluate(list []models.Goal, rates rules.RateSnapshot, now time.Time) []Evaluation {
	out := make([]Evaluation, 0, len(list))
	for _, g := range list {
		ev := Evaluation{GoalID: g.ID, Name: g.Name, MonthsLeft: MonthsLeft(g.TargetDate, now)}

		progress, err := Progress(g)
		if err != nil {
			ev.Error = err.Error()
			out = append(out, ev)
			continue
		}
		ev.Progress = progress

		required, err := MonthlyRequirement(g, rates.Inflation, now)
		if err != nil {
			ev.Error = err.Error()
			out = append(out, ev)
			continue
		}
		ev.MonthlyRequirement = required
		ev.Achievable = required <= g.MonthlyContribution

		out = append(out, ev)
	}
	return out
}
