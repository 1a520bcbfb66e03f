package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/metrics"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer, rs *rules.Store, src store.Source, log *logrus.Logger) map[string]ToolHandler {
	return map[string]ToolHandler{
		"loan_emi":             LoanEMIHandler(cfg, tracer),
		"loan_schedule":        LoanScheduleHandler(cfg, tracer),
		"loan_outstanding":     LoanOutstandingHandler(cfg, tracer),
		"goal_progress":        GoalProgressHandler(tracer, rs, src, log),
		"goal_requirement":     GoalRequirementHandler(cfg, tracer, rs),
		"portfolio_projection": PortfolioProjectionHandler(cfg, tracer, rs, src, log),
		"portfolio_summary":    PortfolioSummaryHandler(cfg, tracer, src, log),
		"asset_growth":         AssetGrowthHandler(cfg, tracer, src, log),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rejectParams отмечает в спане и метриках отклонённые параметры
func rejectParams(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.ValidationFailed(toolName)
	return fmt.Errorf("неверные параметры: %w", err)
}

// failCalculation отмечает ошибку расчета; ошибки входных данных из ядра
// считаются ошибками валидации.
func failCalculation(span trace.Span, toolName string, err error) error {
	if errors.Is(err, validators.ErrInvalidInput) {
		return rejectParams(span, toolName, err)
	}
	span.RecordError(err)
	span.SetAttributes(attribute.String("error", "calculation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.CalculationFailed(toolName, "calculation")
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

// loadSnapshot читает данные пользователя для инструментов портфеля
func loadSnapshot(ctx context.Context, span trace.Span, toolName string, src store.Source, log *logrus.Logger) (*store.Snapshot, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error", "storage_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.CalculationFailed(toolName, "storage")
		log.WithError(err).WithField("tool", toolName).Error("failed to load snapshot")
		return nil, fmt.Errorf("не удалось загрузить данные: %w", err)
	}
	span.SetAttributes(
		attribute.Int("assets", len(snap.Assets)),
		attribute.Int("liabilities", len(snap.Liabilities)),
		attribute.Int("goals", len(snap.Goals)),
	)
	return snap, nil
}
