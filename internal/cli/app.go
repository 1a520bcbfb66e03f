// Package cli реализует подкоманды wealthctl.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/pkg/utils"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Currency - валюта отображения сумм
const Currency = money.INR

// Register регистрирует подкоманды
func Register(c *subcommands.Commander, cfg *config.Config) {
	base := app{cfg: cfg, out: os.Stdout}

	c.Register(&emiCmd{app: base}, "loans")
	c.Register(&scheduleCmd{app: base}, "loans")

	c.Register(&goalsCmd{app: base}, "portfolio")
	c.Register(&projectCmd{app: base}, "portfolio")
	c.Register(&summaryCmd{app: base}, "portfolio")
	c.Register(&liquidateCmd{app: base}, "portfolio")
}

// app - общее состояние подкоманд
type app struct {
	cfg *config.Config
	out io.Writer

	dataFile string
	now      string
}

func (a *app) dataFlags(f *flag.FlagSet) {
	f.StringVar(&a.dataFile, "data", a.cfg.DataFile, "Path to the YAML snapshot")
	f.StringVar(&a.now, "now", "", "Calculation date (YYYY-MM-DD), defaults to today")
}

func (a *app) clock() (time.Time, error) {
	if a.now == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", a.now)
}

func (a *app) failf(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// NotAvailable печатается вместо суммы, которую нельзя отобразить
const NotAvailable = "N/A"

// formatMoney печатает сумму в валюте отображения
func formatMoney(v float64) string {
	if !utils.IsFinite(v) {
		return NotAvailable
	}
	cents := decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
	return money.New(cents, Currency).Display()
}
