package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/sirupsen/logrus"
)

func sampleSnapshot() *Snapshot {
	target := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Snapshot{
		Salary: 150000,
		Rules: []models.GlobalRule{
			{ID: "inflation", Name: "Inflation", Kind: models.RuleInflation, Value: 5, Frequency: "yearly", Active: true},
			{ID: "market-a", Name: "Market", Kind: models.RuleMarket, Value: 11, Frequency: "yearly", Active: true},
			{ID: "market-b", Name: "Market alt", Kind: models.RuleMarket, Value: 14, Frequency: "yearly", Active: true},
		},
		Assets: []models.Asset{
			{ID: "fd1", Name: "FD", Category: models.CategoryFD, Active: true,
				FD: &models.FixedDeposit{Value: 107000, BankName: "SBI", ExpectedReturn: 7}},
			{ID: "gold1", Name: "Coins", Category: models.CategoryGold, Active: true,
				Gold: &models.Gold{Kind: "coins", WeightGrams: 10, BuyPricePerGram: 5000, CurrentPricePerGram: 6000}},
		},
		Liabilities: []models.Liability{
			{ID: "home", Name: "Home loan", Type: "home", Principal: 500000, InterestRate: 9, TenureMonths: 60, OutstandingAmount: 450000, Active: true},
		},
		Goals: []models.Goal{
			{ID: "car", Name: "Car", TargetAmount: 800000, CurrentAmount: 100000, TargetDate: target, ExpectedReturn: 10, Active: true},
		},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func checkSnapshot(t *testing.T, got *Snapshot) {
	t.Helper()
	want := sampleSnapshot()

	if got.Salary != want.Salary {
		t.Errorf("Salary = %v, want %v", got.Salary, want.Salary)
	}
	if len(got.Rules) != 3 || got.Rules[1].ID != "market-a" || got.Rules[2].ID != "market-b" {
		t.Fatalf("rule order not preserved: %+v", got.Rules)
	}
	if got.Rates().MarketReturn != 11 {
		t.Errorf("MarketReturn = %v, want 11", got.Rates().MarketReturn)
	}
	if len(got.Assets) != 2 || got.Assets[0].FD == nil || got.Assets[1].Gold == nil {
		t.Fatalf("assets not restored: %+v", got.Assets)
	}
	if got.Assets[1].Gold.CurrentPricePerGram != 6000 {
		t.Errorf("gold price = %v, want 6000", got.Assets[1].Gold.CurrentPricePerGram)
	}
	if len(got.Liabilities) != 1 || got.Liabilities[0].OutstandingAmount != 450000 {
		t.Errorf("liabilities not restored: %+v", got.Liabilities)
	}
	if len(got.Goals) != 1 || !got.Goals[0].TargetDate.Equal(want.Goals[0].TargetDate) {
		t.Errorf("goals not restored: %+v", got.Goals)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wealth.yaml")

	if err := SaveYAML(path, sampleSnapshot()); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	got, err := YAMLFile{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSnapshot(t, got)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	snap, err := LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if len(snap.Rules) != len(rules.DefaultRules()) {
		t.Errorf("expected default rules, got %d", len(snap.Rules))
	}
	if len(snap.Assets) != 0 {
		t.Errorf("expected no assets, got %d", len(snap.Assets))
	}
}

func TestProjectionInputDefaultSalary(t *testing.T) {
	snap := &Snapshot{Rules: rules.DefaultRules()}
	in := snap.ProjectionInput(100000)
	if in.MonthlySalary != 100000 {
		t.Errorf("MonthlySalary = %v, want 100000", in.MonthlySalary)
	}
	if in.Rates != rules.DefaultRates() {
		t.Errorf("Rates = %+v, want defaults", in.Rates)
	}

	snap.Salary = 120000
	if got := snap.ProjectionInput(100000).MonthlySalary; got != 120000 {
		t.Errorf("MonthlySalary = %v, want 120000", got)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "wealth.db"), quietLogger())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	empty, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if len(empty.Rules) != len(rules.DefaultRules()) || empty.Salary != 0 {
		t.Errorf("empty store: %+v", empty)
	}

	if err := s.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSnapshot(t, got)

	// повторное сохранение заменяет данные, а не дополняет
	smaller := sampleSnapshot()
	smaller.Assets = smaller.Assets[:1]
	if err := s.Save(ctx, smaller); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Assets) != 1 {
		t.Errorf("assets = %d, want 1", len(got.Assets))
	}
}

func TestDeletedRulesStayDeleted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := OpenSQLite(filepath.Join(dir, "wealth.db"), quietLogger())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	backends := []struct {
		name    string
		backend Backend
	}{
		{"yaml", YAMLFile{Path: filepath.Join(dir, "wealth.yaml")}},
		{"sqlite", db},
	}

	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			fresh, err := tt.backend.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(fresh.Rules) != len(rules.DefaultRules()) {
				t.Fatalf("new profile rules = %d, want defaults", len(fresh.Rules))
			}

			fresh.Rules = nil
			if err := tt.backend.Save(ctx, fresh); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := tt.backend.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got.Rules) != 0 {
				t.Errorf("rules reseeded after deleting all: %+v", got.Rules)
			}
			if got.Rates() != rules.DefaultRates() {
				t.Errorf("Rates() = %+v, want fallback defaults", got.Rates())
			}
		})
	}
}

func TestLoadYAMLWithoutRulesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wealth.yaml")
	if err := os.WriteFile(path, []byte("salary: 90000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	snap, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if snap.Salary != 90000 || len(snap.Rules) != len(rules.DefaultRules()) {
		t.Errorf("got salary %v and %d rules, want 90000 and defaults", snap.Salary, len(snap.Rules))
	}
}
