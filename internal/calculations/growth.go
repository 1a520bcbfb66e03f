package calculations

import (
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/cloud-ru/mcp-wealth-go/pkg/utils"
)

// GrowthSchedule рассчитывает помесячное изменение стоимости с капитализацией.
// ratePercent применяется раз в periodMonths месяцев (1 - ежемесячно, 12 - ежегодно);
// отрицательная ставка моделирует амортизацию стоимости.
func GrowthSchedule(initialValue, ratePercent float64, months, periodMonths int) (*GrowthResult, error) {
	if err := validators.NonNegative("initial_value", initialValue); err != nil {
		return nil, err
	}
	if err := validators.ValidatePositiveNumber("rate_percent", ratePercent, -100, 1e6); err != nil {
		return nil, err
	}
	if err := validators.PositiveInt("months", months); err != nil {
		return nil, err
	}
	if err := validators.PositiveInt("period_months", periodMonths); err != nil {
		return nil, err
	}

	r := ratePercent / 100.0
	value := initialValue
	cum := 0.0
	schedule := make([]GrowthEntry, 0, months)

	for m := 1; m <= months; m++ {
		starting := value
		change := 0.0
		if m%periodMonths == 0 {
			change = utils.Round2(value * r)
		}
		value = utils.Round2(value + change)
		cum = utils.Round2(cum + change)

		schedule = append(schedule, GrowthEntry{
			Month:            m,
			StartingValue:    utils.Round2(starting),
			Change:           change,
			EndingValue:      value,
			CumulativeChange: cum,
		})
	}

	return &GrowthResult{
		InitialValue: utils.Round2(initialValue),
		RatePercent:  ratePercent,
		Months:       months,
		FinalValue:   value,
		TotalChange:  cum,
		Schedule:     schedule,
	}, nil
}
