package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.openai.com/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)

	// Every task gets its own parameters.
	for _, task := range []TaskType{TaskPlan, TaskInferColumns, TaskInterpret, TaskCodegen, TaskRepair, TaskQA} {
		tc, ok := cfg.Tasks[task]
		assert.True(t, ok, "missing task config for %s", task)
		assert.Greater(t, tc.MaxTokens, 0)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CODEPLAN_LLM_ENDPOINT", "http://localhost:11434/v1")
	t.Setenv("CODEPLAN_LLM_MODEL", "llama3.2")
	t.Setenv("CODEPLAN_LLM_TIMEOUT_MS", "5000")
	t.Setenv("CODEPLAN_LLM_MAX_RETRIES", "3")
	t.Setenv("CODEPLAN_LLM_LOG_CALLS", "true")
	t.Setenv("CODEPLAN_LLM_CODEGEN_TIMEOUT_MS", "90000")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, 90000, cfg.Tasks[TaskCodegen].TimeoutMs)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("CODEPLAN_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("CODEPLAN_LLM_MAX_RETRIES", "-5")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 12345
	cfg.Tasks[TaskQA] = TaskConfig{Temperature: 0.3, MaxTokens: 512} // no per-task timeout

	assert.Equal(t, 12345, cfg.TaskTimeout(TaskQA))
	assert.Equal(t, cfg.Tasks[TaskCodegen].TimeoutMs, cfg.TaskTimeout(TaskCodegen))
}
