package portfolio

import (
	"errors"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/calculations"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
)

// TotalLiabilities суммирует остатки долга по всем обязательствам
func TotalLiabilities(liabilities []models.Liability) float64 {
	total := 0.0
	for _, l := range liabilities {
		total += l.OutstandingAmount
	}
	return total
}

// TotalEMI суммирует ежемесячные платежи по всем обязательствам
func TotalEMI(liabilities []models.Liability) float64 {
	total := 0.0
	for _, l := range liabilities {
		total += l.MonthlyInstallment
	}
	return total
}

// LiabilityBreakdown группирует остатки долга по типу обязательства
func LiabilityBreakdown(liabilities []models.Liability) map[string]float64 {
	out := make(map[string]float64)
	for _, l := range liabilities {
		out[l.Type] += l.OutstandingAmount
	}
	return out
}

// UpcomingWindow - окно ближайших платежей по умолчанию
const UpcomingWindow = 30 * 24 * time.Hour

// UpcomingPayments возвращает обязательства, очередной платёж по которым
// приходится на интервал [now, now+window]
func UpcomingPayments(liabilities []models.Liability, now time.Time, window time.Duration) []models.Liability {
	until := now.Add(window)
	var out []models.Liability
	for _, l := range liabilities {
		if l.NextPaymentDate == nil {
			continue
		}
		next := *l.NextPaymentDate
		if !next.Before(now) && !next.After(until) {
			out = append(out, l)
		}
	}
	return out
}

// DebtToIncome возвращает отношение суммарного платежа к месячному доходу в процентах
func DebtToIncome(totalEMI, monthlyIncome float64) (float64, error) {
	if err := validators.Positive("monthly_income", monthlyIncome); err != nil {
		return 0, err
	}
	return totalEMI / monthlyIncome * 100, nil
}

// PaidMonths оценивает число уплаченных платежей по дате первого платежа.
// Платёж месяца считается уплаченным, если его день уже наступил.
func PaidMonths(l models.Liability, now time.Time) int {
	if l.EMIStartDate == nil || now.Before(*l.EMIStartDate) {
		return 0
	}
	start := *l.EMIStartDate
	paid := calculations.MonthsBetween(start, now)
	if now.Day() >= start.Day() {
		paid++
	}
	if paid > l.TenureMonths {
		paid = l.TenureMonths
	}
	return paid
}

// ErrNoSchedule возвращается, когда у обязательства нет параметров для графика
var ErrNoSchedule = errors.New("liability has no amortization terms")

// RecalculateOutstanding пересчитывает остаток долга и платёж по графику
// погашения на дату now, не изменяя исходную запись.
func RecalculateOutstanding(l models.Liability, now time.Time) (models.Liability, error) {
	if l.TenureMonths <= 0 || l.EMIStartDate == nil {
		return l, ErrNoSchedule
	}
	installment, err := calculations.EMI(l.Principal, l.InterestRate, l.TenureMonths)
	if err != nil {
		return l, err
	}
	outstanding, err := calculations.Outstanding(l.Principal, l.InterestRate, l.TenureMonths, PaidMonths(l, now))
	if err != nil {
		return l, err
	}
	l.MonthlyInstallment = installment
	l.OutstandingAmount = outstanding
	return l, nil
}
