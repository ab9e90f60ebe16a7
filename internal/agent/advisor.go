package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/llm"
)

// llmAdvisor implements Advisor on top of an llm.Client.
type llmAdvisor struct {
	client llm.Client
}

// NewLLMAdvisor creates an Advisor backed by a language model client.
func NewLLMAdvisor(client llm.Client) Advisor {
	return &llmAdvisor{client: client}
}

func (a *llmAdvisor) Plan(ctx context.Context, preview *domain.Preview) (string, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   formatPreviewPrompt(preview),
	})
	if err != nil {
		return "", fmt.Errorf("plan generation failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func (a *llmAdvisor) InferColumns(ctx context.Context, preview *domain.Preview) (*ColumnInference, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInferColumns,
		SystemPrompt: inferColumnsSystemPrompt,
		UserPrompt:   formatPreviewPrompt(preview),
	})
	if err != nil {
		return nil, fmt.Errorf("column inference failed: %w", err)
	}

	inference, err := llm.ExtractJSON[ColumnInference](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("extracting column inference: %w", err)
	}
	return &inference, nil
}

func (a *llmAdvisor) Interpret(ctx context.Context, proposed domain.ForecastConfig, message string) (*InterpretResult, error) {
	proposedJSON, err := json.Marshal(proposed)
	if err != nil {
		return nil, fmt.Errorf("marshaling proposed config: %w", err)
	}

	user := fmt.Sprintf("proposed_config = %s\n\nuser_message = %s", proposedJSON, message)
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInterpret,
		SystemPrompt: interpretSystemPrompt,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, fmt.Errorf("confirmation interpretation failed: %w", err)
	}

	result, err := llm.ExtractJSON[InterpretResult](resp.Text, validateInterpretResult)
	if err != nil {
		return nil, fmt.Errorf("extracting interpretation: %w", err)
	}
	return &result, nil
}

func (a *llmAdvisor) GenerateCode(ctx context.Context, cfg domain.ForecastConfig) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCodegen,
		SystemPrompt: codegenSystemPrompt,
		UserPrompt:   "confirmed_config = " + string(cfgJSON),
	})
	if err != nil {
		return "", fmt.Errorf("code generation failed: %w", err)
	}
	return strings.TrimSpace(llm.StripFences(resp.Text)), nil
}

func (a *llmAdvisor) RepairCode(ctx context.Context, failingCode, detail string) (string, error) {
	user := fmt.Sprintf("FAILING CODE:\n%s\n\nTRACEBACK:\n%s", failingCode, detail)
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRepair,
		SystemPrompt: repairSystemPrompt,
		UserPrompt:   user,
	})
	if err != nil {
		return "", fmt.Errorf("code repair failed: %w", err)
	}
	return strings.TrimSpace(llm.StripFences(resp.Text)), nil
}

func (a *llmAdvisor) AnswerQA(ctx context.Context, question string, qaCtx *QAContext) (string, error) {
	ctxJSON, err := json.MarshalIndent(qaCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling qa context: %w", err)
	}

	user := fmt.Sprintf("USER QUESTION:\n%s\n\nCONTEXT (JSON):\n%s", question, ctxJSON)
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQA,
		SystemPrompt: qaSystemPrompt,
		UserPrompt:   user,
	})
	if err != nil {
		return "", fmt.Errorf("qa answer failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// formatPreviewPrompt renders the dataset preview as prompt text for the
// planning and inference calls.
func formatPreviewPrompt(preview *domain.Preview) string {
	var b strings.Builder

	b.WriteString("DATASET PREVIEW (top rows):\n")
	headJSON, _ := json.Marshal(preview.Head)
	b.Write(headJSON)

	b.WriteString("\n\nCOLUMN PROFILE:\n")
	profileJSON, _ := json.MarshalIndent(preview.Profile, "", "  ")
	b.Write(profileJSON)

	b.WriteString("\n\nCOLUMNS:\n")
	b.WriteString(strings.Join(preview.Columns, ", "))
	b.WriteString("\n")

	return b.String()
}
