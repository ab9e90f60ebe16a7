// Package agent is the session state machine at the heart of the
// forecasting assistant: per-message routing, the configuration
// negotiation protocol, the generate-execute-repair loop, and the QA
// side channel. Everything external (model calls, code execution, data
// storage) enters through narrow injected interfaces.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/profile"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/runner"
)

// ErrDatasetNotFound indicates the turn referenced an unknown dataset id.
var ErrDatasetNotFound = errors.New("dataset not found")

// DefaultMaxAttempts is the repair budget for new sessions.
const DefaultMaxAttempts = 2

// Orchestrator processes chat turns. Turns for the same dataset id must
// be serialized by the caller; turns for different ids are independent.
type Orchestrator struct {
	advisor     Advisor
	runner      runner.Runner
	datasets    *dataset.Store
	sessions    repository.SessionRepo
	maxAttempts int
}

// New creates an Orchestrator. maxAttempts below 1 falls back to the
// default repair budget.
func New(advisor Advisor, run runner.Runner, datasets *dataset.Store, sessions repository.SessionRepo, maxAttempts int) *Orchestrator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Orchestrator{
		advisor:     advisor,
		runner:      run,
		datasets:    datasets,
		sessions:    sessions,
		maxAttempts: maxAttempts,
	}
}

// TurnRequest is one incoming chat message.
type TurnRequest struct {
	DatasetID string
	Message   string
	ShowCode  bool
}

// TurnResponse is the turn's outcome surfaced to the transport layer.
type TurnResponse struct {
	AssistantMessage string                 `json:"assistant_message"`
	Preview          *domain.Preview        `json:"preview,omitempty"`
	PlanText         string                 `json:"plan_text,omitempty"`
	ProposedConfig   *domain.ForecastConfig `json:"proposed_config,omitempty"`
	ConfirmedConfig  *domain.ForecastConfig `json:"confirmed_config,omitempty"`
	Results          *domain.ForecastResult `json:"results,omitempty"`
	Error            string                 `json:"error,omitempty"`
	GeneratedCode    string                 `json:"generated_code,omitempty"`
}

// HandleTurn runs one full chat turn: rehydrate session state, route to
// exactly one phase, execute it, persist the session (sans frame), and
// return the formatted response.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResponse, error) {
	frame := o.datasets.Get(req.DatasetID)
	if frame == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, req.DatasetID)
	}

	s, err := o.sessions.GetByDatasetID(ctx, req.DatasetID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading session: %w", err)
		}
		s = domain.NewSession(req.DatasetID, o.maxAttempts)
	}

	s.BeginTurn(req.Message, req.ShowCode)
	s.Preview = profile.BuildPreview(frame)

	switch RoutePhase(s) {
	case PhaseQA:
		err = o.runQA(ctx, s)
	case PhaseForecast:
		err = o.runForecast(ctx, s, frame)
	case PhaseNegotiate:
		if err = o.negotiate(ctx, s); err == nil && s.ConfirmedConfig != nil {
			// A confirmation flows straight into execution on the
			// same turn.
			err = o.runForecast(ctx, s, frame)
		}
	default:
		err = o.runFirstTurn(ctx, s)
	}
	if err != nil {
		return nil, err
	}

	if saveErr := o.sessions.Save(ctx, s); saveErr != nil {
		return nil, fmt.Errorf("persisting session: %w", saveErr)
	}

	resp := &TurnResponse{
		AssistantMessage: s.AssistantMessage,
		Preview:          s.Preview,
		PlanText:         s.PlanText,
		ProposedConfig:   s.ProposedConfig,
		ConfirmedConfig:  s.ConfirmedConfig,
		Results:          s.ExecOutput,
		Error:            s.ExecError,
	}
	if req.ShowCode {
		resp.GeneratedCode = s.GeneratedCode
	}
	return resp, nil
}

// DiscardSession drops the persisted conversation state for a dataset,
// used when a dataset is re-uploaded under the same id.
func (o *Orchestrator) DiscardSession(ctx context.Context, datasetID string) error {
	if err := o.sessions.Delete(ctx, datasetID); err != nil {
		return fmt.Errorf("discarding session: %w", err)
	}
	return nil
}
