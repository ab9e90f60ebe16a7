package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of advisor task being performed.
type TaskType string

const (
	TaskPlan         TaskType = "plan"
	TaskInferColumns TaskType = "infer_columns"
	TaskInterpret    TaskType = "interpret"
	TaskCodegen      TaskType = "codegen"
	TaskRepair       TaskType = "repair"
	TaskQA           TaskType = "qa"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the advisor subsystem.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The endpoint is
// any OpenAI-compatible chat completions server.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  60000,
		MaxRetries: 1,
		LogCalls:   false,
		Tasks: map[TaskType]TaskConfig{
			TaskPlan:         {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 30000},
			TaskInferColumns: {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 30000},
			TaskInterpret:    {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 20000},
			TaskCodegen:      {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 60000},
			TaskRepair:       {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 60000},
			TaskQA:           {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads advisor configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODEPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CODEPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CODEPLAN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CODEPLAN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CODEPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskPlan, "CODEPLAN_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskInferColumns, "CODEPLAN_LLM_INFER_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskInterpret, "CODEPLAN_LLM_INTERPRET_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCodegen, "CODEPLAN_LLM_CODEGEN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRepair, "CODEPLAN_LLM_REPAIR_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQA, "CODEPLAN_LLM_QA_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
