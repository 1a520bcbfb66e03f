package tools

import (
	"context"

	"github.com/cloud-ru/mcp-wealth-go/internal/calculations"
	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/metrics"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LoanEMIResult - ответ loan_emi
type LoanEMIResult struct {
	EMI float64 `json:"emi"`
}

// LoanOutstandingResult - ответ loan_outstanding
type LoanOutstandingResult struct {
	PaidMonths  int     `json:"paidMonths"`
	Outstanding float64 `json:"outstanding"`
}

// loanParams извлекает и проверяет общие параметры кредита
func loanParams(cfg *config.Config, params map[string]interface{}) (float64, float64, int, error) {
	principal, err := floatParam(params, "principal")
	if err != nil {
		return 0, 0, 0, err
	}
	rate, err := floatParam(params, "annual_rate_percent")
	if err != nil {
		return 0, 0, 0, err
	}
	months, err := intParam(params, "tenure_months")
	if err != nil {
		return 0, 0, 0, err
	}

	if err := validators.CheckPrincipal(cfg, principal); err != nil {
		return 0, 0, 0, err
	}
	if err := validators.CheckRate(cfg, rate); err != nil {
		return 0, 0, 0, err
	}
	if err := validators.CheckMonths(cfg, months); err != nil {
		return 0, 0, 0, err
	}
	return principal, rate, months, nil
}

func loanAttributes(principal, rate float64, months int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("principal", principal),
		attribute.Float64("annual_rate_percent", rate),
		attribute.Int("tenure_months", months),
	}
}

// LoanEMIHandler рассчитывает ежемесячный платёж
func LoanEMIHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_emi"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, rate, months, err := loanParams(cfg, params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		span.SetAttributes(loanAttributes(principal, rate, months)...)

		emi, err := calculations.EMI(principal, rate, months)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("emi", emi),
		)
		metrics.Success(toolName)

		return LoanEMIResult{EMI: emi}, nil
	}
}

// LoanScheduleHandler строит помесячный график погашения
func LoanScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_schedule"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, rate, months, err := loanParams(cfg, params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		span.SetAttributes(loanAttributes(principal, rate, months)...)

		result, err := calculations.Amortize(principal, rate, months)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("emi", result.Summary.EMI),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)
		metrics.Success(toolName)

		return result, nil
	}
}

// LoanOutstandingHandler возвращает остаток долга после paid_months платежей
func LoanOutstandingHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_outstanding"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, rate, months, err := loanParams(cfg, params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		paid, err := intParam(params, "paid_months")
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		span.SetAttributes(loanAttributes(principal, rate, months)...)
		span.SetAttributes(attribute.Int("paid_months", paid))

		outstanding, err := calculations.Outstanding(principal, rate, months, paid)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("outstanding", outstanding),
		)
		metrics.Success(toolName)

		return LoanOutstandingResult{PaidMonths: paid, Outstanding: outstanding}, nil
	}
}
