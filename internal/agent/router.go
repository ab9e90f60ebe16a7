package agent

import "github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"

// Phase is the workflow destination selected for an incoming message.
type Phase int

const (
	// PhaseFirstTurn runs the full profile -> plan -> infer pipeline.
	PhaseFirstTurn Phase = iota
	// PhaseNegotiate resumes configuration negotiation.
	PhaseNegotiate
	// PhaseForecast (re)generates and executes code for a confirmed config.
	PhaseForecast
	// PhaseQA answers a question without touching the workflow.
	PhaseQA
)

func (p Phase) String() string {
	switch p {
	case PhaseFirstTurn:
		return "first_turn"
	case PhaseNegotiate:
		return "negotiate"
	case PhaseForecast:
		return "forecast"
	case PhaseQA:
		return "qa"
	default:
		return "unknown"
	}
}

// RoutePhase picks exactly one destination for the session's current
// message. The QA check runs before any state-based routing so a user
// can ask a question at any point without derailing the workflow; after
// that, existing state short-circuits the expensive first-turn pipeline.
func RoutePhase(s *domain.Session) Phase {
	if IsProbablyQA(s.UserMessage) {
		return PhaseQA
	}
	if s.ConfirmedConfig != nil {
		return PhaseForecast
	}
	if s.ProposedConfig != nil {
		return PhaseNegotiate
	}
	return PhaseFirstTurn
}
