package models

// RuleKind - тип глобального правила
type RuleKind string

const (
	RuleInflation RuleKind = "inflation"
	RuleSalary    RuleKind = "salary"
	RuleMarket    RuleKind = "market"
	RuleCustom    RuleKind = "custom"
)

// System сообщает, участвует ли тип в расчёте системных ставок
func (k RuleKind) System() bool {
	return k == RuleInflation || k == RuleSalary || k == RuleMarket
}

// GlobalRule - макроэкономическое допущение в процентах годовых
type GlobalRule struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Kind        RuleKind `json:"type" yaml:"kind"`
	Value       float64  `json:"value" yaml:"value"`
	Frequency   string   `json:"frequency" yaml:"frequency"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Active      bool     `json:"isActive" yaml:"active"`
}
