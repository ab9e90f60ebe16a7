package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

func TestBuildQAContext_Snapshot(t *testing.T) {
	cfg := domain.ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"price"}, Freq: "D", Periods: 30}
	s := &domain.Session{
		Preview:         &domain.Preview{Columns: []string{"date", "sales", "price"}},
		PlanText:        "fit a daily model",
		ProposedConfig:  &cfg,
		ConfirmedConfig: &cfg,
		ExecOutput:      successResult(cfg),
		ExecError:       "",
	}

	qaCtx := BuildQAContext(s)

	assert.Same(t, s.Preview, qaCtx.DatasetPreview)
	assert.Equal(t, "fit a daily model", qaCtx.PlanText)
	assert.Equal(t, &cfg, qaCtx.ConfirmedConfig)
	require.NotNil(t, qaCtx.ResultsSummary)
	assert.Equal(t, 6, qaCtx.ResultsSummary.TrainingRows)
	assert.Equal(t, 2, qaCtx.ResultsSummary.ForecastRows)
}

func TestBuildQAContext_NoResults(t *testing.T) {
	s := &domain.Session{ExecError: "ValueError: bad dates"}

	qaCtx := BuildQAContext(s)
	assert.Nil(t, qaCtx.ResultsSummary)
	assert.Equal(t, "ValueError: bad dates", qaCtx.LastError)
}

func TestSummarizeResults_BoundsPreview(t *testing.T) {
	cfg := domain.ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 8}
	out := &domain.ForecastResult{ConfigUsed: cfg, TrainingRows: 100, InputRows: 100}
	for i := 0; i < 8; i++ {
		out.Forecast = append(out.Forecast, map[string]any{
			"date": i, "sales_forecast": float64(i), "sales_lower": 0.0, "sales_upper": 1.0,
		})
	}

	sum := summarizeResults(out)
	require.NotNil(t, sum)
	assert.Equal(t, 8, sum.ForecastRows)
	assert.Len(t, sum.ForecastPreview, 5, "preview is capped regardless of forecast size")
	assert.Equal(t, []string{"date", "sales_forecast", "sales_lower", "sales_upper"}, sum.ForecastColumns)
}

func TestRunQA_OnlyTouchesAssistantMessage(t *testing.T) {
	cfg := domain.ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{}, Freq: "D", Periods: 30}
	s := &domain.Session{
		UserMessage:     "why is the forecast flat?",
		ProposedConfig:  &cfg,
		ConfirmedConfig: &cfg,
		GeneratedCode:   "code-v1",
		ExecOutput:      successResult(cfg),
		Attempt:         1,
		MaxAttempts:     2,
	}
	before := *s

	adv := &mockAdvisor{
		qaFn: func(_ context.Context, question string, qaCtx *QAContext) (string, error) {
			assert.Equal(t, "why is the forecast flat?", question)
			require.NotNil(t, qaCtx.ResultsSummary)
			return "Because the trend component dominates.", nil
		},
	}
	o := &Orchestrator{advisor: adv}

	require.NoError(t, o.runQA(context.Background(), s))

	assert.Equal(t, "Because the trend component dominates.", s.AssistantMessage)
	assert.Equal(t, before.ProposedConfig, s.ProposedConfig)
	assert.Equal(t, before.ConfirmedConfig, s.ConfirmedConfig)
	assert.Equal(t, before.GeneratedCode, s.GeneratedCode)
	assert.Equal(t, before.Attempt, s.Attempt)
	assert.Equal(t, before.ExecOutput, s.ExecOutput)
}

func TestRunQA_AdvisorErrorPropagates(t *testing.T) {
	adv := &mockAdvisor{
		qaFn: func(_ context.Context, _ string, _ *QAContext) (string, error) {
			return "", errBoom
		},
	}
	o := &Orchestrator{advisor: adv}
	s := &domain.Session{UserMessage: "what now?"}

	assert.ErrorIs(t, o.runQA(context.Background(), s), errBoom)
}
