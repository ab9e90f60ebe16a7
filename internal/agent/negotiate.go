package agent

import (
	"context"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// negotiationStrategy is one predicate+handler pair in the negotiation
// chain. Strategies run in declaration order and the first one that
// reports handled wins; nothing later sees the message. The ordering is
// a contract: deterministic parsers run before the advisor fallback, and
// exclusionary checks run before anything that could misread an
// instruction.
type negotiationStrategy struct {
	name  string
	apply func(ctx context.Context, o *Orchestrator, s *domain.Session) (handled bool, err error)
}

var negotiationStrategies = []negotiationStrategy{
	{name: "pending_resolution", apply: resolvePending},
	{name: "horizon", apply: applyHorizon},
	{name: "regressor_replace", apply: applyRegressorReplace},
	{name: "regressor_add", apply: applyRegressorAdd},
	{name: "direct_confirm", apply: applyDirectConfirm},
	{name: "advisor_fallback", apply: applyAdvisorFallback},
}

// negotiate runs the strategy chain for the session's current message.
// On return the session either has a confirmed config (caller proceeds to
// execution), an updated/unchanged proposal with an assistant message, or
// a pending clarification.
func (o *Orchestrator) negotiate(ctx context.Context, s *domain.Session) error {
	if strings.TrimSpace(s.UserMessage) == "" {
		s.AssistantMessage = clarifyPrompt
		return nil
	}

	for _, strat := range negotiationStrategies {
		handled, err := strat.apply(ctx, o, s)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	// Nothing classified the message; prompt without mutating state.
	s.AssistantMessage = clarifyPrompt
	return nil
}

// resolvePending consumes a pending clarification from the previous turn.
// An affirmative applies it, a negative discards it, and anything else
// discards it and falls through so a genuinely new instruction is never
// blocked. Pending state never survives past this point.
func resolvePending(_ context.Context, _ *Orchestrator, s *domain.Session) (bool, error) {
	if s.PendingConfig == nil {
		return false, nil
	}

	pending := *s.PendingConfig
	s.PendingConfig = nil

	if isAffirmativeToken(s.UserMessage) {
		cfg := NormalizeConfig(pending)
		s.ProposedConfig = &cfg
		s.ConfirmedConfig = &cfg
		s.AssistantMessage = confirmedMessage(cfg)
		return true, nil
	}
	if isNegativeToken(s.UserMessage) {
		s.AssistantMessage = pendingDiscardedMessage
		return true, nil
	}
	return false, nil
}

// applyHorizon handles "<N> <unit>" horizon instructions. Only freq and
// periods change; the message never falls through to later strategies.
func applyHorizon(_ context.Context, _ *Orchestrator, s *domain.Session) (bool, error) {
	upd, ok := ParseHorizon(s.UserMessage, s.ProposedConfig.Freq)
	if !ok {
		return false, nil
	}

	cfg := *s.ProposedConfig
	cfg.Freq = upd.Freq
	cfg.Periods = upd.Periods
	cfg = NormalizeConfig(cfg)
	s.ProposedConfig = &cfg
	s.AssistantMessage = updatedMessage(cfg, "")
	return true, nil
}

// applyRegressorReplace handles full regressor replacement. When the
// trigger fires but no candidate matches a known column, it asks for an
// exact name instead of falling through: the advisor must not get a
// chance to hallucinate a column the deterministic parser rejected.
func applyRegressorReplace(_ context.Context, _ *Orchestrator, s *domain.Session) (bool, error) {
	columns := knownColumns(s)
	regs, triggered := ParseRegressorReplace(s.UserMessage, columns, s.ProposedConfig.DsCol, s.ProposedConfig.YCol)
	if !triggered {
		return false, nil
	}

	if len(regs) == 0 {
		s.AssistantMessage = unknownColumnMessage(columns)
		return true, nil
	}

	cfg := *s.ProposedConfig
	cfg.Regressors = regs
	cfg = NormalizeConfig(cfg)
	s.ProposedConfig = &cfg
	s.AssistantMessage = updatedMessage(cfg, "")
	return true, nil
}

// applyRegressorAdd appends the first known column mentioned alongside an
// "add ... regressor" instruction, deduplicated.
func applyRegressorAdd(_ context.Context, _ *Orchestrator, s *domain.Session) (bool, error) {
	col, ok := ParseRegressorAdd(s.UserMessage, knownColumns(s), s.ProposedConfig.DsCol, s.ProposedConfig.YCol)
	if !ok {
		return false, nil
	}

	cfg := *s.ProposedConfig
	cfg.Regressors = append(append([]string(nil), cfg.Regressors...), col)
	cfg = NormalizeConfig(cfg)
	s.ProposedConfig = &cfg
	s.AssistantMessage = updatedMessage(cfg, "")
	return true, nil
}

// applyDirectConfirm promotes the proposal on an exact confirmation token.
func applyDirectConfirm(_ context.Context, _ *Orchestrator, s *domain.Session) (bool, error) {
	if !isConfirmToken(s.UserMessage) {
		return false, nil
	}

	cfg := NormalizeConfig(*s.ProposedConfig)
	s.ProposedConfig = &cfg
	s.ConfirmedConfig = &cfg
	s.AssistantMessage = confirmedMessage(cfg)
	return true, nil
}

// applyAdvisorFallback sends the message to the advisor for structured
// classification. A malformed response is a hard error for the turn,
// never a silent ask_clarifying.
func applyAdvisorFallback(ctx context.Context, o *Orchestrator, s *domain.Session) (bool, error) {
	proposed := *s.ProposedConfig
	res, err := o.advisor.Interpret(ctx, proposed, s.UserMessage)
	if err != nil {
		return false, err
	}

	switch res.Action {
	case ActionConfirm:
		cfg := NormalizeConfig(proposed)
		s.ProposedConfig = &cfg
		s.ConfirmedConfig = &cfg
		s.AssistantMessage = confirmedMessage(cfg)
		return true, nil

	case ActionModify:
		cfg := NormalizeFragment(res.Config, proposed)
		// Deterministic column extraction beats free-form model
		// extraction: if the replace parser can read this message, its
		// regressor list overrides whatever the advisor returned.
		if regs, triggered := ParseRegressorReplace(s.UserMessage, knownColumns(s), cfg.DsCol, cfg.YCol); triggered && len(regs) > 0 {
			cfg.Regressors = regs
			cfg = NormalizeConfig(cfg)
		}
		s.ProposedConfig = &cfg
		s.AssistantMessage = updatedMessage(cfg, res.MessageToUser)
		return true, nil

	default: // ActionAskClarifying
		// Conservative bias: hold the advisor's candidate update as
		// pending, never auto-apply it. The question is surfaced
		// verbatim.
		pending := NormalizeFragment(res.Config, proposed)
		s.PendingConfig = &pending
		if res.MessageToUser != "" {
			s.AssistantMessage = res.MessageToUser
		} else {
			s.AssistantMessage = clarifyPrompt
		}
		return true, nil
	}
}

// knownColumns returns the dataset's column names from the preview.
func knownColumns(s *domain.Session) []string {
	if s.Preview == nil {
		return nil
	}
	return s.Preview.Columns
}
