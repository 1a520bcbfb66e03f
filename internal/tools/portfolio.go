package tools

import (
	"context"
	"errors"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/metrics"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/portfolio"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SummaryResult - ответ portfolio_summary
type SummaryResult struct {
	portfolio.Summary
	MonthlyIncome    float64            `json:"monthlyIncome"`
	DebtToIncome     float64            `json:"debtToIncome"`
	UpcomingPayments []models.Liability `json:"upcomingPayments"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// PortfolioProjectionHandler строит прогноз капитала на 30 лет.
// monthly_salary переопределяет зарплату из сохранённых данных.
func PortfolioProjectionHandler(cfg *config.Config, tracer trace.Tracer, rs *rules.Store, src store.Source, log *logrus.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "portfolio_projection"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		now, err := nowParam(params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}

		snap, err := loadSnapshot(ctx, span, toolName, src, log)
		if err != nil {
			return nil, err
		}

		in := snap.ProjectionInput(cfg.DefaultSalary)
		in.Rates = rs.Snapshot()
		if in.MonthlySalary, err = optFloatParam(params, "monthly_salary", in.MonthlySalary); err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		if err := validators.CheckAmount(cfg, "monthly_salary", in.MonthlySalary); err != nil {
			return nil, rejectParams(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("monthly_salary", in.MonthlySalary),
			attribute.Float64("inflation", in.Rates.Inflation),
			attribute.Float64("salary_growth", in.Rates.SalaryGrowth),
			attribute.Float64("market_return", in.Rates.MarketReturn),
		)

		timer := prometheus.NewTimer(metrics.ProjectionDuration.WithLabelValues(toolName))
		projection, err := portfolio.Project(in, now)
		timer.ObserveDuration()
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		last := projection[len(projection)-1]
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("final_year", last.Year),
			attribute.Float64("final_net_worth", last.NetWorth),
		)
		metrics.Success(toolName)
		log.WithFields(logrus.Fields{
			"tool":            toolName,
			"final_year":      last.Year,
			"final_net_worth": last.NetWorth,
		}).Debug("projection built")

		return projection, nil
	}
}

// PortfolioSummaryHandler собирает сводку по активам и обязательствам.
// Остатки долга с известным графиком пересчитываются на дату расчёта.
func PortfolioSummaryHandler(cfg *config.Config, tracer trace.Tracer, src store.Source, log *logrus.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "portfolio_summary"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		now, err := nowParam(params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}

		snap, err := loadSnapshot(ctx, span, toolName, src, log)
		if err != nil {
			return nil, err
		}

		var warnings []string
		liabilities := make([]models.Liability, 0, len(snap.Liabilities))
		for _, l := range snap.Liabilities {
			updated, err := portfolio.RecalculateOutstanding(l, now)
			switch {
			case errors.Is(err, portfolio.ErrNoSchedule):
			case err != nil:
				warnings = append(warnings, "liability "+l.ID+": "+err.Error())
			}
			liabilities = append(liabilities, updated)
		}

		summary, err := portfolio.Summarize(snap.Assets, liabilities)
		if err != nil {
			warnings = append(warnings, err.Error())
		}

		income := snap.Salary
		if income == 0 {
			income = cfg.DefaultSalary
		}
		result := SummaryResult{
			Summary:          summary,
			MonthlyIncome:    income,
			UpcomingPayments: portfolio.UpcomingPayments(liabilities, now, portfolio.UpcomingWindow),
			Warnings:         warnings,
		}
		if dti, err := portfolio.DebtToIncome(summary.TotalEMI, income); err == nil {
			result.DebtToIncome = dti
		}

		for _, w := range warnings {
			log.WithField("tool", toolName).Warn(w)
		}
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("net_worth", summary.NetWorth),
			attribute.Int("warnings", len(warnings)),
		)
		metrics.Success(toolName)

		return result, nil
	}
}

// AssetGrowthHandler строит помесячный график стоимости актива по его локальному правилу
func AssetGrowthHandler(cfg *config.Config, tracer trace.Tracer, src store.Source, log *logrus.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "asset_growth"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		assetID, err := stringParam(params, "asset_id")
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		months, err := intParam(params, "months")
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		if err := validators.CheckMonths(cfg, months); err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		span.SetAttributes(
			attribute.String("asset_id", assetID),
			attribute.Int("months", months),
		)

		snap, err := loadSnapshot(ctx, span, toolName, src, log)
		if err != nil {
			return nil, err
		}

		var asset *models.Asset
		for i := range snap.Assets {
			if snap.Assets[i].ID == assetID {
				asset = &snap.Assets[i]
				break
			}
		}
		if asset == nil {
			return nil, rejectParams(span, toolName, &validators.InvalidInputError{Field: "asset_id", Reason: "актив " + assetID + " не найден"})
		}

		timer := prometheus.NewTimer(metrics.ProjectionDuration.WithLabelValues(toolName))
		result, err := portfolio.AssetGrowth(*asset, months)
		timer.ObserveDuration()
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("final_value", result.FinalValue),
		)
		metrics.Success(toolName)

		return result, nil
	}
}
