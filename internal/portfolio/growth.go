package portfolio

import (
	"fmt"

	"github.com/cloud-ru/mcp-wealth-go/internal/calculations"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
)

// AssetGrowth строит график стоимости актива по его локальному правилу.
// Без включённого правила стоимость остаётся постоянной.
func AssetGrowth(a models.Asset, months int) (*calculations.GrowthResult, error) {
	value, err := Value(a)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	period := 12
	if r := a.LocalRule; r != nil && r.Enabled {
		rate = r.ChangeRate
		switch r.Frequency {
		case models.FrequencyMonthly:
			period = 1
		case models.FrequencyYearly, "":
			period = 12
		default:
			return nil, fmt.Errorf("asset %s: unknown local rule frequency %q", a.ID, r.Frequency)
		}
	}

	return calculations.GrowthSchedule(value, rate, months, period)
}
