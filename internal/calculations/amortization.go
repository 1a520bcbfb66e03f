package calculations

import (
	"math"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/cloud-ru/mcp-wealth-go/pkg/utils"
)

func validateLoan(principal, annualRatePercent float64, tenureMonths int) error {
	if err := validators.NonNegative("principal", principal); err != nil {
		return err
	}
	if err := validators.NonNegative("annual_rate_percent", annualRatePercent); err != nil {
		return err
	}
	return validators.PositiveInt("tenure_months", tenureMonths)
}

// EMI рассчитывает ежемесячный аннуитетный платёж по методу уменьшающегося остатка:
//
//	EMI = P·r·(1+r)^n / ((1+r)^n − 1) = P·r / (1 − (1+r)^−n), r = ставка/12/100
//
// При нулевой ставке формула вырождается, платёж равен P/n. Результат округлён до копеек.
func EMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if err := validateLoan(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	return emi(principal, annualRatePercent, tenureMonths)
}

// emi считает через (1+r)^−n: при больших ставке и сроке степень уходит в ноль,
// и платёж стремится к P·r, а не к Inf/Inf.
func emi(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	r := annualRatePercent / 12.0 / 100.0
	n := float64(tenureMonths)

	var payment float64
	if r == 0.0 {
		payment = principal / n
	} else {
		payment = principal * r / (1.0 - math.Pow(1.0+r, -n))
	}
	if err := validators.Finite("emi", payment); err != nil {
		return 0, err
	}
	return utils.Round2(payment), nil
}

// Schedule рассчитывает полный график погашения. Всегда возвращает ровно
// tenureMonths строк; последняя строка гасит остаток, накопленный округлением.
func Schedule(principal, annualRatePercent float64, tenureMonths int) ([]Row, error) {
	if err := validateLoan(principal, annualRatePercent, tenureMonths); err != nil {
		return nil, err
	}

	payment, err := emi(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}
	r := annualRatePercent / 12.0 / 100.0
	remaining := principal
	schedule := make([]Row, 0, tenureMonths)

	for m := 1; m <= tenureMonths; m++ {
		interest := utils.Round2(remaining * r)
		principalComponent := utils.Round2(payment - interest)
		monthly := payment

		if m == tenureMonths {
			principalComponent = utils.Round2(remaining)
			monthly = utils.Round2(principalComponent + interest)
		}

		remaining = utils.ClampZero(utils.Round2(remaining - principalComponent))

		schedule = append(schedule, Row{
			Month:     m,
			EMI:       monthly,
			Principal: principalComponent,
			Interest:  interest,
			Balance:   remaining,
		})
	}

	return schedule, nil
}

// Outstanding возвращает остаток долга после paidMonths уплаченных платежей.
// paidMonths=0 даёт полную сумму кредита, paidMonths>=tenureMonths - ноль.
func Outstanding(principal, annualRatePercent float64, tenureMonths, paidMonths int) (float64, error) {
	if err := validateLoan(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	if paidMonths < 0 {
		return 0, validators.NonNegative("paid_months", float64(paidMonths))
	}
	if paidMonths >= tenureMonths {
		return 0, nil
	}
	if paidMonths == 0 {
		return utils.Round2(principal), nil
	}

	schedule, err := Schedule(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return 0, err
	}
	return schedule[paidMonths-1].Balance, nil
}

// Amortize возвращает график вместе со сводкой по кредиту
func Amortize(principal, annualRatePercent float64, tenureMonths int) (*LoanResult, error) {
	schedule, err := Schedule(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}

	totalPaid := 0.0
	totalInterest := 0.0
	for _, row := range schedule {
		totalPaid = utils.Round2(totalPaid + row.EMI)
		totalInterest = utils.Round2(totalInterest + row.Interest)
	}
	if err := validators.Finite("total_paid", totalPaid); err != nil {
		return nil, err
	}
	payment, err := emi(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}

	return &LoanResult{
		Summary: LoanSummary{
			Principal:         utils.Round2(principal),
			AnnualRatePercent: annualRatePercent,
			TenureMonths:      tenureMonths,
			EMI:               payment,
			TotalPaid:         totalPaid,
			TotalInterest:     totalInterest,
		},
		Schedule: schedule,
	}, nil
}

// MonthsBetween считает число календарных месяцев между датами без учёта дней
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
