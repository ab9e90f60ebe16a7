package agent

import (
	"context"
	"errors"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/runner"
)

// runForecast is the generate-execute-repair loop. It is entered only
// with a confirmed configuration, starts a fresh attempt chain, and is
// structurally unable to increment attempt past the budget: repair is
// the only place attempt moves, and it is guarded.
//
// Execution failures are never fatal to the session; they loop through
// repair until the budget runs out and only then surface a terminal
// message. Advisor failures, by contrast, propagate as hard errors for
// the turn.
func (o *Orchestrator) runForecast(ctx context.Context, s *domain.Session, frame *domain.Frame) error {
	cfg := *s.ConfirmedConfig
	s.ResetExecution()

	code, err := o.advisor.GenerateCode(ctx, cfg)
	if err != nil {
		return err
	}
	s.GeneratedCode = code

	for {
		// exec
		out, runErr := o.runner.Run(ctx, s.GeneratedCode, frame, cfg)
		if runErr == nil {
			s.ExecOutput = out
			s.ExecError = ""
			s.ExecDetail = ""
			break
		}
		if ctx.Err() != nil {
			return runErr
		}

		s.ExecOutput = nil
		var failure *runner.Failure
		if errors.As(runErr, &failure) {
			s.ExecError = failure.Message
			s.ExecDetail = failure.Detail
		} else {
			s.ExecError = runErr.Error()
			s.ExecDetail = runErr.Error()
		}

		// diagnose: record the interim notice, then move to repair.
		s.AssistantMessage = retryNotice

		// repair, guarded by the budget.
		if s.Attempt >= s.MaxAttempts {
			break
		}
		repaired, repairErr := o.advisor.RepairCode(ctx, s.GeneratedCode, s.ExecDetail)
		if repairErr != nil {
			return repairErr
		}
		s.GeneratedCode = repaired
		s.Attempt++
	}

	// results
	switch {
	case s.ExecOutput != nil:
		s.AssistantMessage = successSummary(s.ExecOutput)
	case s.ExecError != "" && s.Attempt >= s.MaxAttempts:
		s.AssistantMessage = failureSummary(s.ExecError)
	}
	return nil
}
