package domain

// Preview is a compact descriptive summary of a dataset, safe to embed in
// prompts and API responses without carrying the full payload.
type Preview struct {
	Head    []map[string]string `json:"head"`
	Profile Profile             `json:"profile"`
	Columns []string            `json:"columns"`
}

// Profile holds per-dataset and per-column descriptive statistics.
type Profile struct {
	NumRows int                      `json:"n_rows"`
	NumCols int                      `json:"n_cols"`
	Columns map[string]ColumnProfile `json:"columns"`
}

// ColumnProfile describes a single column.
type ColumnProfile struct {
	Dtype        string   `json:"dtype"`
	MissingCount int      `json:"missing_count"`
	MissingPct   float64  `json:"missing_pct"`
	UniqueCount  int      `json:"unique_count"`
	SampleValues []string `json:"sample_values"`
}

// ForecastResult is the structured output of a successful execution run.
type ForecastResult struct {
	Forecast     []map[string]any `json:"forecast"`
	ConfigUsed   ForecastConfig   `json:"config_used"`
	TrainingRows int              `json:"training_rows"`
	InputRows    int              `json:"input_rows"`
}

// Session is the per-dataset conversation state. It is owned exclusively
// by the orchestrator, mutated only within a single turn, and persisted
// at turn end without the dataset payload (the frame lives in the dataset
// store and is reattached on rehydration).
type Session struct {
	DatasetID        string `json:"dataset_id"`
	UserMessage      string `json:"user_message"`
	AssistantMessage string `json:"assistant_message"`

	// Data summary. The raw frame is deliberately not part of the
	// persisted session.
	Preview *Preview `json:"preview,omitempty"`

	// Plan and configuration lifecycle.
	PlanText        string          `json:"plan_text,omitempty"`
	ProposedConfig  *ForecastConfig `json:"proposed_config,omitempty"`
	PendingConfig   *ForecastConfig `json:"pending_config,omitempty"`
	ConfirmedConfig *ForecastConfig `json:"confirmed_config,omitempty"`

	// Code execution envelope.
	GeneratedCode string          `json:"generated_code,omitempty"`
	ExecOutput    *ForecastResult `json:"exec_output,omitempty"`
	ExecError     string          `json:"exec_error,omitempty"`
	ExecDetail    string          `json:"exec_detail,omitempty"`

	// Retry controls.
	Attempt     int `json:"attempt"`
	MaxAttempts int `json:"max_attempts"`

	// UI controls.
	ShowCode bool `json:"show_code"`
}

// NewSession creates a fresh session for a dataset with the default
// repair budget.
func NewSession(datasetID string, maxAttempts int) *Session {
	if maxAttempts < 1 {
		maxAttempts = 2
	}
	return &Session{
		DatasetID:   datasetID,
		MaxAttempts: maxAttempts,
	}
}

// BeginTurn records the incoming message on a rehydrated session. The
// execution envelope is kept: a QA turn after a successful forecast still
// needs the last result for context. ResetExecution clears it when a new
// attempt chain starts.
func (s *Session) BeginTurn(userMessage string, showCode bool) {
	s.UserMessage = userMessage
	s.ShowCode = showCode
}

// ResetExecution starts a fresh attempt chain: attempt back to zero and
// the previous output, error, and diagnostic detail dropped.
func (s *Session) ResetExecution() {
	s.Attempt = 0
	s.ExecOutput = nil
	s.ExecError = ""
	s.ExecDetail = ""
}
