package portfolio

import (
	"math"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
)

// Допущения прогноза. Они не связаны с фактическими графиками погашения
// обязательств и задают упрощённую модель.
const (
	// ProjectionYears - горизонт прогноза; строк в прогнозе на одну больше
	ProjectionYears = 30
	// LiabilityPaydownRatio - доля долга, остающаяся после каждого года
	LiabilityPaydownRatio = 0.9
	// SavingsRate - доля зарплаты, которая ежегодно инвестируется
	SavingsRate = 0.30
)

// Projection - состояние капитала в одном календарном году прогноза
type Projection struct {
	Year        int     `json:"year"`
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Goals       float64 `json:"goals"`
	NetWorth    float64 `json:"netWorth"`
}

// Input - снимок данных для прогноза
type Input struct {
	Assets        []models.Asset
	Liabilities   []models.Liability
	Goals         []models.Goal
	MonthlySalary float64
	Rates         rules.RateSnapshot
}

// Project строит прогноз на годы now.Year() .. now.Year()+30.
//
// Первая строка - текущее состояние без роста. Каждый следующий год к активам
// добавляются сбережения и начисляется рыночная доходность, долг уменьшается
// на 10%, зарплата растёт, а сбережения пересчитываются как 30% годовой зарплаты.
// Цели года суммируются и индексируются на инфляцию от текущего года.
func Project(in Input, now time.Time) ([]Projection, error) {
	if err := validators.NonNegative("monthly_salary", in.MonthlySalary); err != nil {
		return nil, err
	}
	if err := validateRates(in.Rates); err != nil {
		return nil, err
	}

	assets, err := TotalValue(in.Assets)
	if err != nil {
		return nil, err
	}
	liabilities := TotalLiabilities(in.Liabilities)

	inflation := in.Rates.Inflation / 100
	salaryGrowth := in.Rates.SalaryGrowth / 100
	marketReturn := in.Rates.MarketReturn / 100

	salary := in.MonthlySalary
	savings := salary * 12 * SavingsRate

	goalsByYear := make(map[int]float64)
	for _, g := range in.Goals {
		goalsByYear[g.TargetDate.In(now.Location()).Year()] += g.TargetAmount
	}

	startYear := now.Year()
	out := make([]Projection, 0, ProjectionYears+1)

	for i := 0; i <= ProjectionYears; i++ {
		year := startYear + i
		if i > 0 {
			assets = (assets + savings) * (1 + marketReturn)
			liabilities *= LiabilityPaydownRatio
			salary *= 1 + salaryGrowth
			savings = salary * 12 * SavingsRate
		}

		out = append(out, Projection{
			Year:        year,
			Assets:      assets,
			Liabilities: liabilities,
			Goals:       goalsByYear[year] * math.Pow(1+inflation, float64(i)),
			NetWorth:    assets - liabilities,
		})
	}

	return out, nil
}

func validateRates(r rules.RateSnapshot) error {
	if err := validators.ValidatePositiveNumber("inflation", r.Inflation, -100, 1e6); err != nil {
		return err
	}
	if err := validators.ValidatePositiveNumber("salary_growth", r.SalaryGrowth, -100, 1e6); err != nil {
		return err
	}
	return validators.ValidatePositiveNumber("market_return", r.MarketReturn, -100, 1e6)
}
