package calculations

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
)

func TestEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
		want      float64
		wantError bool
	}{
		{
			name:      "home loan 20 years",
			principal: 1000000,
			rate:      8.5,
			tenure:    240,
			want:      8678.23,
		},
		{
			name:      "five year loan",
			principal: 500000,
			rate:      9,
			tenure:    60,
			want:      10379.18,
		},
		{
			name:      "zero rate",
			principal: 100000,
			rate:      0,
			tenure:    10,
			want:      10000,
		},
		{
			name:      "zero principal",
			principal: 0,
			rate:      10,
			tenure:    12,
			want:      0,
		},
		{
			name:      "zero tenure",
			principal: 100000,
			rate:      10,
			tenure:    0,
			wantError: true,
		},
		{
			name:      "negative rate",
			principal: 100000,
			rate:      -1,
			tenure:    12,
			wantError: true,
		},
		{
			name:      "negative principal",
			principal: -5,
			rate:      10,
			tenure:    12,
			wantError: true,
		},
		{
			name:      "NaN rate",
			principal: 100000,
			rate:      math.NaN(),
			tenure:    12,
			wantError: true,
		},
		{
			name:      "huge rate and tenure tend to interest only",
			principal: 1000,
			rate:      10000,
			tenure:    1000,
			want:      8333.33,
		},
		{
			name:      "payment overflows float64",
			principal: math.MaxFloat64,
			rate:      1200,
			tenure:    12,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EMI(tt.principal, tt.rate, tt.tenure)
			if (err != nil) != tt.wantError {
				t.Fatalf("EMI() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, validators.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("EMI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
	}{
		{name: "five year loan", principal: 500000, rate: 9, tenure: 60},
		{name: "home loan", principal: 1000000, rate: 8.5, tenure: 240},
		{name: "zero rate", principal: 100000, rate: 0, tenure: 7},
		{name: "single month", principal: 1234.56, rate: 12, tenure: 1},
		{name: "long tenure", principal: 7500000, rate: 7.25, tenure: 480},
		{name: "huge rate and tenure", principal: 1000, rate: 10000, tenure: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := Schedule(tt.principal, tt.rate, tt.tenure)
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}
			if len(schedule) != tt.tenure {
				t.Fatalf("expected %d rows, got %d", tt.tenure, len(schedule))
			}

			sum := 0.0
			prev := tt.principal
			for i, row := range schedule {
				if row.Month != i+1 {
					t.Errorf("row %d has month %d", i, row.Month)
				}
				if row.Balance < 0 {
					t.Errorf("row %d balance negative: %v", row.Month, row.Balance)
				}
				if row.Balance > prev {
					t.Errorf("row %d balance increased: %v > %v", row.Month, row.Balance, prev)
				}
				prev = row.Balance
				sum += row.Principal
			}

			if math.Abs(sum-tt.principal) > 0.01 {
				t.Errorf("principal components sum to %v, want %v", sum, tt.principal)
			}
			if last := schedule[len(schedule)-1]; last.Balance != 0 {
				t.Errorf("expected final balance 0, got %v", last.Balance)
			}
		})
	}
}

func TestScheduleFirstRow(t *testing.T) {
	schedule, err := Schedule(500000, 9, 60)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	first := schedule[0]
	if first.EMI != 10379.18 {
		t.Errorf("expected EMI 10379.18, got %v", first.EMI)
	}
	if first.Interest != 3750 {
		t.Errorf("expected interest 3750, got %v", first.Interest)
	}
	if first.Principal != 6629.18 {
		t.Errorf("expected principal 6629.18, got %v", first.Principal)
	}
	if first.Balance != 493370.82 {
		t.Errorf("expected balance 493370.82, got %v", first.Balance)
	}
}

func TestScheduleInvalid(t *testing.T) {
	if _, err := Schedule(1000, 10, -3); !errors.Is(err, validators.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative tenure, got %v", err)
	}
	if _, err := Schedule(math.MaxFloat64, 1200, 12); !errors.Is(err, validators.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for overflowing payment, got %v", err)
	}
	if _, err := Amortize(math.MaxFloat64/2, 1200, 2); !errors.Is(err, validators.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for overflowing total, got %v", err)
	}
}

func TestScheduleHugeRateStaysFinite(t *testing.T) {
	schedule, err := Schedule(1000, 10000, 1000)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	for _, row := range schedule {
		if math.IsNaN(row.EMI) || math.IsNaN(row.Principal) || math.IsNaN(row.Balance) ||
			math.IsInf(row.EMI, 0) || math.IsInf(row.Balance, 0) {
			t.Fatalf("row %d is not finite: %+v", row.Month, row)
		}
	}
	if first := schedule[0]; first.EMI != 8333.33 || first.Interest != 8333.33 {
		t.Errorf("unexpected first row %+v", first)
	}
}

func TestOutstanding(t *testing.T) {
	const (
		principal = 500000.0
		rate      = 9.0
		tenure    = 60
	)

	schedule, err := Schedule(principal, rate, tenure)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	tests := []struct {
		name string
		paid int
		want float64
	}{
		{name: "nothing paid", paid: 0, want: principal},
		{name: "one installment", paid: 1, want: schedule[0].Balance},
		{name: "half way", paid: 30, want: schedule[29].Balance},
		{name: "one left", paid: 59, want: schedule[58].Balance},
		{name: "fully paid", paid: 60, want: 0},
		{name: "overpaid", paid: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Outstanding(principal, rate, tenure, tt.paid)
			if err != nil {
				t.Fatalf("Outstanding() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Outstanding(%d) = %v, want %v", tt.paid, got, tt.want)
			}
		})
	}
}

func TestOutstandingMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for k := 0; k <= 130; k++ {
		got, err := Outstanding(2500000, 10.5, 120, k)
		if err != nil {
			t.Fatalf("Outstanding(%d) error = %v", k, err)
		}
		if got > prev {
			t.Fatalf("Outstanding(%d) = %v increased from %v", k, got, prev)
		}
		if k >= 120 && got != 0 {
			t.Fatalf("Outstanding(%d) = %v, want 0", k, got)
		}
		prev = got
	}
}

func TestOutstandingNegativePaidMonths(t *testing.T) {
	if _, err := Outstanding(1000, 10, 12, -1); !errors.Is(err, validators.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAmortize(t *testing.T) {
	result, err := Amortize(1000000, 12, 12)
	if err != nil {
		t.Fatalf("Amortize() error = %v", err)
	}
	if len(result.Schedule) != 12 {
		t.Errorf("expected 12 months, got %d", len(result.Schedule))
	}
	if result.Summary.EMI != 88848.79 {
		t.Errorf("expected EMI 88848.79, got %v", result.Summary.EMI)
	}
	if result.Summary.TotalPaid <= result.Summary.Principal {
		t.Error("total paid should be greater than principal")
	}
	if math.Abs(result.Summary.TotalPaid-result.Summary.Principal-result.Summary.TotalInterest) > 0.01 {
		t.Errorf("total paid %v should equal principal plus interest %v",
			result.Summary.TotalPaid, result.Summary.TotalInterest)
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same month",
			start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "across years",
			start: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  15,
		},
		{
			name:  "end before start",
			start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
