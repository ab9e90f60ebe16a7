package agent

import (
	"context"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

const qaResultPreviewRows = 5

// BuildQAContext assembles the read-only snapshot the QA responder hands
// to the advisor. It reads session state and never mutates it.
func BuildQAContext(s *domain.Session) *QAContext {
	return &QAContext{
		DatasetPreview:  s.Preview,
		PlanText:        s.PlanText,
		ProposedConfig:  s.ProposedConfig,
		ConfirmedConfig: s.ConfirmedConfig,
		ResultsSummary:  summarizeResults(s.ExecOutput),
		LastError:       s.ExecError,
	}
}

// summarizeResults reduces an execution result to a prompt-safe summary.
func summarizeResults(out *domain.ForecastResult) *ResultsSummary {
	if out == nil {
		return nil
	}

	n := len(out.Forecast)
	if n > qaResultPreviewRows {
		n = qaResultPreviewRows
	}

	return &ResultsSummary{
		TrainingRows:    out.TrainingRows,
		InputRows:       out.InputRows,
		ForecastRows:    len(out.Forecast),
		ForecastPreview: out.Forecast[:n],
		ForecastColumns: forecastColumns(out),
		ConfigUsed:      out.ConfigUsed,
	}
}

// runQA answers the question from the snapshot. Configuration, generated
// code, and the attempt counter are untouched; only the assistant
// message changes.
func (o *Orchestrator) runQA(ctx context.Context, s *domain.Session) error {
	answer, err := o.advisor.AnswerQA(ctx, s.UserMessage, BuildQAContext(s))
	if err != nil {
		return err
	}
	s.AssistantMessage = answer
	return nil
}
