package validators

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid principal",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     1000000.0,
			wantError: false,
		},
		{
			name:      "zero principal allowed",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "invalid principal negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     -1000.0,
			wantError: true,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     12.0,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "invalid rate NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid months",
			validator: func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:     12,
			wantError: false,
		},
		{
			name:      "invalid months zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "valid target",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTarget(cfg, v.(float64)) },
			value:     500000.0,
			wantError: false,
		},
		{
			name:      "invalid target zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTarget(cfg, v.(float64)) },
			value:     0.0,
			wantError: true,
		},
		{
			name:      "valid amount",
			validator: func(cfg *config.Config, v interface{}) error { return CheckAmount(cfg, "salary", v.(float64)) },
			value:     10000.0,
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestInvalidInputErrorMatching(t *testing.T) {
	err := PositiveInt("tenure_months", 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var iie *InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("expected *InvalidInputError, got %T", err)
	}
	if iie.Field != "tenure_months" {
		t.Errorf("expected field tenure_months, got %q", iie.Field)
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative("rate", 0); err != nil {
		t.Errorf("zero should be accepted: %v", err)
	}
	if err := NonNegative("rate", -0.01); err == nil {
		t.Error("negative value should be rejected")
	}
	if err := Positive("target_amount", math.Inf(1)); err == nil {
		t.Error("infinity should be rejected")
	}
}
