// Package rules хранит глобальные макроэкономические допущения (инфляция,
// рост зарплаты, доходность рынка) и пользовательские правила.
package rules

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/google/uuid"
)

// Значения по умолчанию, если активное правило нужного типа не найдено
const (
	DefaultInflation    = 6.0
	DefaultSalaryGrowth = 10.0
	DefaultMarketReturn = 12.0
)

// ErrRuleNotFound возвращается при обращении к несуществующему правилу
var ErrRuleNotFound = errors.New("rule not found")

// RateSnapshot - зафиксированный набор системных ставок в процентах годовых
type RateSnapshot struct {
	Inflation    float64 `json:"inflation" yaml:"inflation"`
	SalaryGrowth float64 `json:"salaryGrowth" yaml:"salary_growth"`
	MarketReturn float64 `json:"marketReturn" yaml:"market_return"`
}

// DefaultRates возвращает снимок со ставками по умолчанию
func DefaultRates() RateSnapshot {
	return RateSnapshot{
		Inflation:    DefaultInflation,
		SalaryGrowth: DefaultSalaryGrowth,
		MarketReturn: DefaultMarketReturn,
	}
}

// DefaultRules возвращает системные правила, с которыми стартует новый профиль
func DefaultRules() []models.GlobalRule {
	return []models.GlobalRule{
		{
			ID:          "inflation",
			Name:        "Inflation Rate",
			Kind:        models.RuleInflation,
			Value:       DefaultInflation,
			Frequency:   "yearly",
			Description: "Average annual inflation rate",
			Active:      true,
		},
		{
			ID:          "salary",
			Name:        "Salary Growth",
			Kind:        models.RuleSalary,
			Value:       DefaultSalaryGrowth,
			Frequency:   "yearly",
			Description: "Expected annual salary increment",
			Active:      true,
		},
		{
			ID:          "market",
			Name:        "Market Returns",
			Kind:        models.RuleMarket,
			Value:       DefaultMarketReturn,
			Frequency:   "yearly",
			Description: "Expected market returns",
			Active:      true,
		},
	}
}

func defaultRate(kind models.RuleKind) float64 {
	switch kind {
	case models.RuleInflation:
		return DefaultInflation
	case models.RuleSalary:
		return DefaultSalaryGrowth
	case models.RuleMarket:
		return DefaultMarketReturn
	}
	return 0
}

// Lookup ищет первое активное правило типа kind в порядке добавления.
// Пользовательские правила в расчёте ставок не участвуют.
func Lookup(rules []models.GlobalRule, kind models.RuleKind) (float64, bool) {
	if !kind.System() {
		return 0, false
	}
	for _, r := range rules {
		if r.Kind == kind && r.Active {
			return r.Value, true
		}
	}
	return 0, false
}

// Rate возвращает ставку типа kind или значение по умолчанию
func Rate(rules []models.GlobalRule, kind models.RuleKind) float64 {
	if v, ok := Lookup(rules, kind); ok {
		return v
	}
	return defaultRate(kind)
}

// SnapshotOf собирает системные ставки из набора правил
func SnapshotOf(rules []models.GlobalRule) RateSnapshot {
	return RateSnapshot{
		Inflation:    Rate(rules, models.RuleInflation),
		SalaryGrowth: Rate(rules, models.RuleSalary),
		MarketReturn: Rate(rules, models.RuleMarket),
	}
}

// Store - потокобезопасное хранилище правил с сохранением порядка добавления
type Store struct {
	mu    sync.RWMutex
	rules []models.GlobalRule
}

// NewStore создаёт хранилище; без аргументов заполняется DefaultRules
func NewStore(rules ...models.GlobalRule) *Store {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	s := &Store{rules: make([]models.GlobalRule, len(rules))}
	copy(s.rules, rules)
	return s
}

// Restore создаёт хранилище из сохранённого набора как есть, без подстановки
// правил по умолчанию: пустой набор остаётся пустым
func Restore(rules []models.GlobalRule) *Store {
	s := &Store{}
	s.Replace(rules)
	return s
}

// Replace заменяет весь набор правил
func (s *Store) Replace(rules []models.GlobalRule) {
	cp := make([]models.GlobalRule, len(rules))
	copy(cp, rules)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = cp
}

// List возвращает копию всех правил
func (s *Store) List() []models.GlobalRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GlobalRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Get возвращает правило по идентификатору
func (s *Store) Get(id string) (models.GlobalRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.rules[i], true
	}
	return models.GlobalRule{}, false
}

// Upsert добавляет новое правило или заменяет существующее с тем же ID.
// Пустой ID заменяется сгенерированным; итоговое правило возвращается.
func (s *Store) Upsert(rule models.GlobalRule) (models.GlobalRule, error) {
	switch rule.Kind {
	case models.RuleInflation, models.RuleSalary, models.RuleMarket, models.RuleCustom:
	default:
		return models.GlobalRule{}, &validators.InvalidInputError{Field: "type", Reason: fmt.Sprintf("неизвестный тип правила %q", rule.Kind)}
	}
	if err := validators.ValidatePositiveNumber("value", rule.Value, -100, 1e6); err != nil {
		return models.GlobalRule{}, err
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(rule.ID); i >= 0 {
		s.rules[i] = rule
	} else {
		s.rules = append(s.rules, rule)
	}
	return rule, nil
}

// Delete удаляет правило; возвращает false, если его не было
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	return true
}

// SetActive включает или выключает правило
func (s *Store) SetActive(id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	s.rules[i].Active = active
	return nil
}

// Rate возвращает текущую ставку типа kind
func (s *Store) Rate(kind models.RuleKind) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Rate(s.rules, kind)
}

// Snapshot фиксирует текущие системные ставки для передачи в расчёты
func (s *Store) Snapshot() RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SnapshotOf(s.rules)
}

func (s *Store) index(id string) int {
	for i, r := range s.rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}
