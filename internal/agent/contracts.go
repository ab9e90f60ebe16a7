package agent

import (
	"context"
	"fmt"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// Advisor is the external text/structured-generation capability the core
// consumes: planning, column inference, confirmation interpretation, code
// synthesis and repair, and free-text QA. Calls may be slow and may fail;
// failures surface as hard errors for the turn and are never retried here.
type Advisor interface {
	Plan(ctx context.Context, preview *domain.Preview) (string, error)
	InferColumns(ctx context.Context, preview *domain.Preview) (*ColumnInference, error)
	Interpret(ctx context.Context, proposed domain.ForecastConfig, message string) (*InterpretResult, error)
	GenerateCode(ctx context.Context, cfg domain.ForecastConfig) (string, error)
	RepairCode(ctx context.Context, failingCode, detail string) (string, error)
	AnswerQA(ctx context.Context, question string, qaCtx *QAContext) (string, error)
}

// ConfigFragment is a partially-specified configuration as it arrives
// from the advisor. Fields are loosely typed on purpose: the model may
// omit keys, send a bare string where a list is expected, or send periods
// as a string. Fragments are never used directly; they pass through the
// normalizer against a fallback config first.
type ConfigFragment struct {
	DsCol      *string `json:"ds_col"`
	YCol       *string `json:"y_col"`
	Regressors any     `json:"regressors"`
	Freq       *string `json:"freq"`
	Periods    any     `json:"periods"`
}

// ColumnInference is the structured result of the first-turn column
// inference call.
type ColumnInference struct {
	ConfigFragment
	Rationale string `json:"rationale"`
}

// InterpretAction classifies the user's reply to a proposed configuration.
type InterpretAction string

const (
	ActionConfirm       InterpretAction = "confirm"
	ActionModify        InterpretAction = "modify"
	ActionAskClarifying InterpretAction = "ask_clarifying"
)

// InterpretResult is the structured result of the confirmation
// interpreter call.
type InterpretResult struct {
	Action        InterpretAction `json:"action"`
	Config        *ConfigFragment `json:"config"`
	MessageToUser string          `json:"message_to_user"`
}

// validateInterpretResult is the schema validator for interpreter output.
// A malformed action is a hard error for the call, never a silent
// ask_clarifying.
func validateInterpretResult(r InterpretResult) error {
	switch r.Action {
	case ActionConfirm, ActionModify, ActionAskClarifying:
		return nil
	default:
		return fmt.Errorf("action must be confirm, modify, or ask_clarifying, got %q", r.Action)
	}
}

// QAContext is the read-only snapshot handed to the advisor for
// question answering. Building it never mutates session state.
type QAContext struct {
	DatasetPreview  *domain.Preview        `json:"dataset_preview,omitempty"`
	PlanText        string                 `json:"plan_text,omitempty"`
	ProposedConfig  *domain.ForecastConfig `json:"proposed_config,omitempty"`
	ConfirmedConfig *domain.ForecastConfig `json:"confirmed_config,omitempty"`
	ResultsSummary  *ResultsSummary        `json:"results_summary,omitempty"`
	LastError       string                 `json:"last_error,omitempty"`
}

// ResultsSummary is a compact view of an execution result, safe to embed
// in a prompt regardless of forecast size.
type ResultsSummary struct {
	TrainingRows    int                   `json:"training_rows"`
	InputRows       int                   `json:"input_rows"`
	ForecastRows    int                   `json:"forecast_rows"`
	ForecastPreview []map[string]any      `json:"forecast_preview_first_5"`
	ForecastColumns []string              `json:"forecast_columns"`
	ConfigUsed      domain.ForecastConfig `json:"config_used"`
}
