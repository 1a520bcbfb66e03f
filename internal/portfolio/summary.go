package portfolio

import "github.com/cloud-ru/mcp-wealth-go/internal/models"

// Summary - сводные показатели портфеля на текущий момент
type Summary struct {
	TotalValue       float64                     `json:"totalValue"`
	TotalInvested    float64                     `json:"totalInvested"`
	GainLoss         float64                     `json:"gainLoss"`
	TotalLiabilities float64                     `json:"totalLiabilities"`
	TotalEMI         float64                     `json:"totalEMI"`
	NetWorth         float64                     `json:"netWorth"`
	Allocation       map[models.Category]float64 `json:"allocation"`
	Liabilities      map[string]float64          `json:"liabilityBreakdown"`
}

// Summarize собирает сводку по активам и обязательствам. Ошибки оценки
// отдельных активов возвращаются вместе с посчитанной по остальным сводкой.
func Summarize(assets []models.Asset, liabilities []models.Liability) (Summary, error) {
	value, valueErr := TotalValue(assets)
	invested, _ := TotalInvested(assets)
	allocation, _ := Allocation(assets)
	debt := TotalLiabilities(liabilities)

	return Summary{
		TotalValue:       value,
		TotalInvested:    invested,
		GainLoss:         value - invested,
		TotalLiabilities: debt,
		TotalEMI:         TotalEMI(liabilities),
		NetWorth:         value - debt,
		Allocation:       allocation,
		Liabilities:      LiabilityBreakdown(liabilities),
	}, valueErr
}
