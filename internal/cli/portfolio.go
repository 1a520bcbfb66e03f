package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/cloud-ru/mcp-wealth-go/internal/goals"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/portfolio"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/google/subcommands"
)

type goalsCmd struct {
	app
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show progress and required contribution of each goal" }
func (*goalsCmd) Usage() string {
	return `wealthctl goals [-data <file>] [-now <date>]

  Evaluates every goal of the snapshot against the active inflation rule.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) { c.dataFlags(f) }

func (c *goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := c.clock()
	if err != nil {
		return c.failf("Error parsing date: %v", err)
	}
	snap, err := store.LoadYAML(c.dataFile)
	if err != nil {
		return c.failf("Error loading %q: %v", c.dataFile, err)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Goal\tProgress\tMonths left\tMonthly need\tAchievable")
	for _, ev := range goals.Evaluate(snap.Goals, snap.Rates(), now) {
		if ev.Error != "" {
			fmt.Fprintf(w, "%s\terror: %s\t\t\t\n", ev.Name, ev.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%.1f%%\t%.1f\t%s\t%t\n",
			ev.Name, ev.Progress, ev.MonthsLeft, formatMoney(ev.MonthlyRequirement), ev.Achievable)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type projectCmd struct {
	app
	salary float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project net worth over the next 30 years" }
func (*projectCmd) Usage() string {
	return `wealthctl project [-data <file>] [-now <date>] [-salary <monthly>]

  Prints assets, liabilities, goal totals and net worth per year.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.dataFlags(f)
	f.Float64Var(&c.salary, "salary", 0, "Monthly salary, overrides the snapshot")
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := c.clock()
	if err != nil {
		return c.failf("Error parsing date: %v", err)
	}
	snap, err := store.LoadYAML(c.dataFile)
	if err != nil {
		return c.failf("Error loading %q: %v", c.dataFile, err)
	}

	in := snap.ProjectionInput(c.cfg.DefaultSalary)
	if c.salary > 0 {
		in.MonthlySalary = c.salary
	}
	rows, err := portfolio.Project(in, now)
	if err != nil {
		return c.failf("Error projecting: %v", err)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tAssets\tLiabilities\tGoals\tNet worth\t")
	for _, p := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", p.Year,
			formatMoney(p.Assets), formatMoney(p.Liabilities), formatMoney(p.Goals), formatMoney(p.NetWorth))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	app
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display current portfolio totals and allocation" }
func (*summaryCmd) Usage() string {
	return `wealthctl summary [-data <file>]

  Displays total value, invested amount, liabilities and allocation by category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.dataFlags(f) }

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := store.LoadYAML(c.dataFile)
	if err != nil {
		return c.failf("Error loading %q: %v", c.dataFile, err)
	}

	s, err := portfolio.Summarize(snap.Assets, snap.Liabilities)
	if err != nil {
		fmt.Fprintf(c.out, "Warning: %v\n", err)
	}

	fmt.Fprintf(c.out, "Total value:     %s\n", formatMoney(s.TotalValue))
	fmt.Fprintf(c.out, "Total invested:  %s\n", formatMoney(s.TotalInvested))
	fmt.Fprintf(c.out, "Gain/loss:       %s\n", formatMoney(s.GainLoss))
	fmt.Fprintf(c.out, "Liabilities:     %s\n", formatMoney(s.TotalLiabilities))
	fmt.Fprintf(c.out, "Monthly EMI:     %s\n", formatMoney(s.TotalEMI))
	fmt.Fprintf(c.out, "Net worth:       %s\n", formatMoney(s.NetWorth))

	categories := make([]string, 0, len(s.Allocation))
	for cat := range s.Allocation {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Fprintf(c.out, "  %-14s %s\n", cat, formatMoney(s.Allocation[models.Category(cat)]))
	}
	return subcommands.ExitSuccess
}

type liquidateCmd struct {
	app
	id string
}

func (*liquidateCmd) Name() string     { return "liquidate" }
func (*liquidateCmd) Synopsis() string { return "convert an asset to cash in the first bank account" }
func (*liquidateCmd) Usage() string {
	return `wealthctl liquidate -id <asset> [-data <file>] [-now <date>]

  Sells the asset at its current value and credits the first bank account,
  creating "Primary Bank Account" if there is none.
  The snapshot file is rewritten.
`
}

func (c *liquidateCmd) SetFlags(f *flag.FlagSet) {
	c.dataFlags(f)
	f.StringVar(&c.id, "id", "", "Asset ID to liquidate")
}

func (c *liquidateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(c.out, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	now, err := c.clock()
	if err != nil {
		return c.failf("Error parsing date: %v", err)
	}
	snap, err := store.LoadYAML(c.dataFile)
	if err != nil {
		return c.failf("Error loading %q: %v", c.dataFile, err)
	}

	assets, credit, err := portfolio.ConvertToCash(snap.Assets, c.id, now)
	if err != nil {
		return c.failf("Error liquidating %q: %v", c.id, err)
	}
	snap.Assets = assets
	if err := store.SaveYAML(c.dataFile, snap); err != nil {
		return c.failf("Error saving %q: %v", c.dataFile, err)
	}

	fmt.Fprintf(c.out, "Credited %s to %s\n", formatMoney(credit.Amount), credit.Account.Name)
	return subcommands.ExitSuccess
}
