package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/cloud-ru/mcp-wealth-go/internal/calculations"
	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/google/subcommands"
)

type loanFlags struct {
	principal float64
	rate      float64
	months    int
}

func (l *loanFlags) set(f *flag.FlagSet) {
	f.Float64Var(&l.principal, "principal", 0, "Loan principal")
	f.Float64Var(&l.rate, "rate", 0, "Annual interest rate, percent")
	f.IntVar(&l.months, "months", 0, "Tenure in months")
}

// check применяет те же ограничения, что и инструменты сервера
func (l *loanFlags) check(cfg *config.Config) error {
	if err := validators.CheckPrincipal(cfg, l.principal); err != nil {
		return err
	}
	if err := validators.CheckRate(cfg, l.rate); err != nil {
		return err
	}
	return validators.CheckMonths(cfg, l.months)
}

type emiCmd struct {
	app
	loan loanFlags
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "compute the monthly installment of a loan" }
func (*emiCmd) Usage() string {
	return `wealthctl emi -principal <amount> -rate <percent> -months <n>

  Prints the equated monthly installment, total paid and total interest.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) { c.loan.set(f) }

func (c *emiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.loan.check(c.cfg); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	res, err := calculations.Amortize(c.loan.principal, c.loan.rate, c.loan.months)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := res.Summary
	fmt.Fprintf(c.out, "EMI:            %s\n", formatMoney(s.EMI))
	fmt.Fprintf(c.out, "Total paid:     %s\n", formatMoney(s.TotalPaid))
	fmt.Fprintf(c.out, "Total interest: %s\n", formatMoney(s.TotalInterest))
	return subcommands.ExitSuccess
}

type scheduleCmd struct {
	app
	loan loanFlags
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amortization schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `wealthctl schedule -principal <amount> -rate <percent> -months <n>

  Prints one row per month: installment, principal, interest and balance.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) { c.loan.set(f) }

func (c *scheduleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.loan.check(c.cfg); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := calculations.Schedule(c.loan.principal, c.loan.rate, c.loan.months)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Month\tEMI\tPrincipal\tInterest\tBalance\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", r.Month,
			formatMoney(r.EMI), formatMoney(r.Principal), formatMoney(r.Interest), formatMoney(r.Balance))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
