package agent

import (
	"context"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// runFirstTurn executes the one-time pipeline for a fresh dataset:
// plan text, then structured column inference, normalized against an
// empty fallback into the initial proposal. Profiling and inference are
// idempotent per dataset; the router guarantees this never re-runs once
// a proposal exists.
func (o *Orchestrator) runFirstTurn(ctx context.Context, s *domain.Session) error {
	planText, err := o.advisor.Plan(ctx, s.Preview)
	if err != nil {
		return err
	}
	s.PlanText = planText

	inference, err := o.advisor.InferColumns(ctx, s.Preview)
	if err != nil {
		return err
	}

	proposed := NormalizeFragment(&inference.ConfigFragment, domain.ForecastConfig{})
	s.ProposedConfig = &proposed
	s.AssistantMessage = proposalMessage(planText, proposed, inference.Rationale)
	return nil
}
