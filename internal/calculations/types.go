package calculations

// Row представляет одну строку графика погашения
type Row struct {
	Month     int     `json:"month"`
	EMI       float64 `json:"emi"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
	EMI               float64 `json:"emi"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// LoanResult представляет результат расчёта кредита
type LoanResult struct {
	Summary  LoanSummary `json:"summary"`
	Schedule []Row       `json:"schedule"`
}

// GrowthEntry - одна строка графика изменения стоимости
type GrowthEntry struct {
	Month            int     `json:"month"`
	StartingValue    float64 `json:"starting_value"`
	Change           float64 `json:"change"`
	EndingValue      float64 `json:"ending_value"`
	CumulativeChange float64 `json:"cumulative_change"`
}

// GrowthResult представляет результат расчёта роста стоимости
type GrowthResult struct {
	InitialValue float64       `json:"initial_value"`
	RatePercent  float64       `json:"rate_percent"`
	Months       int           `json:"months"`
	FinalValue   float64       `json:"final_value"`
	TotalChange  float64       `json:"total_change"`
	Schedule     []GrowthEntry `json:"schedule"`
}
