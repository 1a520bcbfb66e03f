package tools

import (
	"context"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/goals"
	"github.com/cloud-ru/mcp-wealth-go/internal/metrics"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GoalRequirementResult - ответ goal_requirement
type GoalRequirementResult struct {
	Progress           float64 `json:"progress"`
	MonthsLeft         float64 `json:"monthsLeft"`
	InflationPercent   float64 `json:"inflationPercent"`
	MonthlyRequirement float64 `json:"monthlyRequirement"`
	Achievable         bool    `json:"achievable"`
}

// GoalRequirementHandler рассчитывает ежемесячный взнос для цели, заданной параметрами.
// Если inflation_percent не передан, берётся активное правило инфляции.
func GoalRequirementHandler(cfg *config.Config, tracer trace.Tracer, rs *rules.Store) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "goal_requirement"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		goal, inflation, err := goalParams(cfg, rs, params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		now, err := nowParam(params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		span.SetAttributes(
			attribute.Float64("target_amount", goal.TargetAmount),
			attribute.Float64("current_amount", goal.CurrentAmount),
			attribute.Float64("expected_return", goal.ExpectedReturn),
			attribute.Float64("inflation_percent", inflation),
			attribute.String("target_date", goal.TargetDate.Format("2006-01-02")),
		)

		progress, err := goals.Progress(goal)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}
		required, err := goals.MonthlyRequirement(goal, inflation, now)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		result := GoalRequirementResult{
			Progress:           progress,
			MonthsLeft:         goals.MonthsLeft(goal.TargetDate, now),
			InflationPercent:   inflation,
			MonthlyRequirement: required,
			Achievable:         required <= goal.MonthlyContribution,
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_requirement", required),
		)
		metrics.Success(toolName)

		return result, nil
	}
}

func goalParams(cfg *config.Config, rs *rules.Store, params map[string]interface{}) (models.Goal, float64, error) {
	var goal models.Goal
	var err error

	if goal.TargetAmount, err = floatParam(params, "target_amount"); err != nil {
		return goal, 0, err
	}
	if err = validators.CheckTarget(cfg, goal.TargetAmount); err != nil {
		return goal, 0, err
	}
	if goal.CurrentAmount, err = optFloatParam(params, "current_amount", 0); err != nil {
		return goal, 0, err
	}
	if err = validators.CheckAmount(cfg, "current_amount", goal.CurrentAmount); err != nil {
		return goal, 0, err
	}
	if goal.MonthlyContribution, err = optFloatParam(params, "monthly_contribution", 0); err != nil {
		return goal, 0, err
	}
	if err = validators.CheckAmount(cfg, "monthly_contribution", goal.MonthlyContribution); err != nil {
		return goal, 0, err
	}
	if goal.ExpectedReturn, err = optFloatParam(params, "expected_return", 0); err != nil {
		return goal, 0, err
	}

	raw, err := stringParam(params, "target_date")
	if err != nil {
		return goal, 0, err
	}
	if goal.TargetDate, err = parseDate("target_date", raw); err != nil {
		return goal, 0, err
	}

	inflation, err := optFloatParam(params, "inflation_percent", rs.Rate(models.RuleInflation))
	if err != nil {
		return goal, 0, err
	}
	return goal, inflation, nil
}

// GoalProgressHandler оценивает цели из сохранённых данных. Необязательный
// goal_id ограничивает ответ одной целью.
func GoalProgressHandler(tracer trace.Tracer, rs *rules.Store, src store.Source, log *logrus.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "goal_progress"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		goalID, err := optStringParam(params, "goal_id")
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}
		now, err := nowParam(params)
		if err != nil {
			return nil, rejectParams(span, toolName, err)
		}

		snap, err := loadSnapshot(ctx, span, toolName, src, log)
		if err != nil {
			return nil, err
		}

		list := snap.Goals
		if goalID != "" {
			list = nil
			for _, g := range snap.Goals {
				if g.ID == goalID {
					list = append(list, g)
				}
			}
			if len(list) == 0 {
				return nil, rejectParams(span, toolName, &validators.InvalidInputError{Field: "goal_id", Reason: "цель " + goalID + " не найдена"})
			}
		}

		evaluations := goals.Evaluate(list, rs.Snapshot(), now)

		failed := 0
		for _, ev := range evaluations {
			if ev.Error != "" {
				failed++
				log.WithFields(logrus.Fields{"tool": toolName, "goal": ev.GoalID}).Warn(ev.Error)
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("evaluated", len(evaluations)),
			attribute.Int("failed", failed),
		)
		metrics.Success(toolName)

		return evaluations, nil
	}
}
