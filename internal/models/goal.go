package models

import "time"

// Goal - финансовая цель пользователя
type Goal struct {
	ID                  string    `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	TargetAmount        float64   `json:"targetAmount" yaml:"target_amount"`
	CurrentAmount       float64   `json:"currentAmount" yaml:"current_amount"`
	TargetDate          time.Time `json:"targetDate" yaml:"target_date"`
	Priority            string    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Category            string    `json:"category,omitempty" yaml:"category,omitempty"`
	Description         string    `json:"description,omitempty" yaml:"description,omitempty"`
	LinkedAssets        []string  `json:"linkedAssets,omitempty" yaml:"linked_assets,omitempty"`
	MonthlyContribution float64   `json:"monthlyContribution" yaml:"monthly_contribution"`
	ExpectedReturn      float64   `json:"expectedReturn" yaml:"expected_return"`
	Active              bool      `json:"isActive" yaml:"active"`
	CreatedAt           time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}
