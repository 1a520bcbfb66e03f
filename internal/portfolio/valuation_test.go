package portfolio

import (
	"errors"
	"testing"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name         string
		asset        models.Asset
		wantValue    float64
		wantInvested float64
		wantError    bool
	}{
		{
			name:         "stocks",
			asset:        models.Asset{Category: models.CategoryStocks, Stocks: &models.Holding{Units: 10, BuyPrice: 1500, CurrentPrice: 1800}},
			wantValue:    18000,
			wantInvested: 15000,
		},
		{
			name:         "crypto",
			asset:        models.Asset{Category: models.CategoryCrypto, Crypto: &models.Holding{Units: 0.5, BuyPrice: 2000000, CurrentPrice: 3000000}},
			wantValue:    1500000,
			wantInvested: 1000000,
		},
		{
			name:         "gold",
			asset:        models.Asset{Category: models.CategoryGold, Gold: &models.Gold{WeightGrams: 20, BuyPricePerGram: 5000, CurrentPricePerGram: 7000}},
			wantValue:    140000,
			wantInvested: 100000,
		},
		{
			name:         "property share",
			asset:        models.Asset{Category: models.CategoryProperty, Property: &models.Property{MarketValue: 10000000, PurchasePrice: 6000000, OwnershipPercent: 50}},
			wantValue:    5000000,
			wantInvested: 3000000,
		},
		{
			name:         "mutual fund",
			asset:        models.Asset{Category: models.CategoryMutualFund, MutualFund: &models.MutualFund{Value: 260000, TotalInvested: 200000}},
			wantValue:    260000,
			wantInvested: 200000,
		},
		{
			name:         "fixed deposit",
			asset:        models.Asset{Category: models.CategoryFD, FD: &models.FixedDeposit{Value: 300000}},
			wantValue:    300000,
			wantInvested: 300000,
		},
		{
			name:         "other",
			asset:        models.Asset{Category: models.CategoryOther, Other: &models.Plain{Value: 42}},
			wantValue:    42,
			wantInvested: 42,
		},
		{
			name:         "bank account",
			asset:        models.Asset{Category: models.CategoryBankAccount, BankAccount: &models.Plain{Value: 9000}},
			wantValue:    9000,
			wantInvested: 9000,
		},
		{
			name:         "missing details default to zero",
			asset:        models.Asset{Category: models.CategoryProperty},
			wantValue:    0,
			wantInvested: 0,
		},
		{
			name:         "partially filled holding",
			asset:        models.Asset{Category: models.CategoryStocks, Stocks: &models.Holding{Units: 10}},
			wantValue:    0,
			wantInvested: 0,
		},
		{
			name:      "unknown category",
			asset:     models.Asset{ID: "a1", Category: "Bond"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Value(tt.asset)
			if (err != nil) != tt.wantError {
				t.Fatalf("Value() error = %v, wantError %v", err, tt.wantError)
			}
			inv, invErr := Invested(tt.asset)
			if (invErr != nil) != tt.wantError {
				t.Fatalf("Invested() error = %v, wantError %v", invErr, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Errorf("expected ErrUnknownCategory, got %v", err)
				}
				return
			}
			if v != tt.wantValue {
				t.Errorf("Value() = %v, want %v", v, tt.wantValue)
			}
			if inv != tt.wantInvested {
				t.Errorf("Invested() = %v, want %v", inv, tt.wantInvested)
			}
		})
	}
}

func TestTotalValue(t *testing.T) {
	assets := []models.Asset{
		{ID: "fd", Category: models.CategoryFD, FD: &models.FixedDeposit{Value: 100000}},
		{ID: "sold", Category: models.CategoryOther, Liquidated: true, Other: &models.Plain{Value: 50000}},
		{ID: "bad", Category: "Bond"},
		{ID: "gold", Category: models.CategoryGold, Gold: &models.Gold{WeightGrams: 10, CurrentPricePerGram: 6000}},
	}

	total, err := TotalValue(assets)
	if total != 160000 {
		t.Errorf("TotalValue() = %v, want 160000", total)
	}
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected joined ErrUnknownCategory, got %v", err)
	}

	total, err = TotalValue(assets[:2])
	if err != nil || total != 100000 {
		t.Errorf("TotalValue() = %v, %v; want 100000, nil", total, err)
	}
}

func TestAllocation(t *testing.T) {
	assets := []models.Asset{
		{Category: models.CategoryStocks, Stocks: &models.Holding{Units: 2, CurrentPrice: 100}},
		{Category: models.CategoryStocks, Stocks: &models.Holding{Units: 3, CurrentPrice: 100}},
		{Category: models.CategoryFD, FD: &models.FixedDeposit{Value: 1000}},
	}

	got, err := Allocation(assets)
	if err != nil {
		t.Fatalf("Allocation() error = %v", err)
	}
	if got[models.CategoryStocks] != 500 || got[models.CategoryFD] != 1000 {
		t.Errorf("unexpected allocation %v", got)
	}
}

func TestSummarize(t *testing.T) {
	assets := []models.Asset{
		{Category: models.CategoryStocks, Stocks: &models.Holding{Units: 100, BuyPrice: 100, CurrentPrice: 150}},
		{Category: models.CategoryFD, FD: &models.FixedDeposit{Value: 50000}},
	}
	liabilities := []models.Liability{
		{Type: "Home Loan", OutstandingAmount: 30000, MonthlyInstallment: 1200},
		{Type: "Credit Card", OutstandingAmount: 5000, MonthlyInstallment: 500},
		{Type: "Home Loan", OutstandingAmount: 10000, MonthlyInstallment: 300},
	}

	s, err := Summarize(assets, liabilities)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.TotalValue != 65000 || s.TotalInvested != 60000 || s.GainLoss != 5000 {
		t.Errorf("unexpected asset totals: %+v", s)
	}
	if s.TotalLiabilities != 45000 || s.NetWorth != 20000 || s.TotalEMI != 2000 {
		t.Errorf("unexpected liability totals: %+v", s)
	}
	if s.Liabilities["Home Loan"] != 40000 {
		t.Errorf("expected home loan breakdown 40000, got %v", s.Liabilities["Home Loan"])
	}
}
