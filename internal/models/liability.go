package models

import "time"

// Liability представляет кредит или иное обязательство
type Liability struct {
	ID                 string     `json:"id" yaml:"id"`
	Name               string     `json:"name" yaml:"name"`
	Type               string     `json:"type" yaml:"type"`
	Principal          float64    `json:"principal" yaml:"principal"`
	InterestRate       float64    `json:"interestRate" yaml:"interest_rate"`
	TenureMonths       int        `json:"tenure" yaml:"tenure_months"`
	MonthlyInstallment float64    `json:"monthlyInstallment" yaml:"monthly_installment"`
	OutstandingAmount  float64    `json:"outstandingAmount" yaml:"outstanding_amount"`
	Lender             string     `json:"lender,omitempty" yaml:"lender,omitempty"`
	SanctionDate       *time.Time `json:"sanctionDate,omitempty" yaml:"sanction_date,omitempty"`
	EMIStartDate       *time.Time `json:"emiStartDate,omitempty" yaml:"emi_start_date,omitempty"`
	NextPaymentDate    *time.Time `json:"nextPaymentDate,omitempty" yaml:"next_payment_date,omitempty"`
	MaturityDate       *time.Time `json:"loanMaturityDate,omitempty" yaml:"maturity_date,omitempty"`
	Active             bool       `json:"isActive" yaml:"active"`
	LocalRule          *LocalRule `json:"localRule,omitempty" yaml:"local_rule,omitempty"`
	Notes              string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}
