package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Action  string `json:"action"`
	Periods int    `json:"periods"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"action": "confirm", "periods": 30}`

	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "confirm", got.Action)
	assert.Equal(t, 30, got.Periods)
}

func TestExtractJSON_CodeFences(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"action\": \"modify\", \"periods\": 60}\n```\nDone."

	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "modify", got.Action)
	assert.Equal(t, 60, got.Periods)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! The config is {"action": "confirm", "periods": 7} as requested.`

	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Periods)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Config map[string]any `json:"config"`
	}
	raw := `{"config": {"freq": "D", "periods": 30}}`

	got, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "D", got.Config["freq"])
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := "{\n\"action\": \"confirm\", // user said yes\n\"periods\": 14\n}"

	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Periods)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[testPayload]("no json here at all", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"action": "maybe", "periods": 30}`

	_, err := ExtractJSON[testPayload](raw, func(p testPayload) error {
		if p.Action != "confirm" && p.Action != "modify" {
			return fmt.Errorf("bad action %q", p.Action)
		}
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"action": "confirm {not a brace}", "periods": 3}`

	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "confirm {not a brace}", got.Action)
}

func TestStripFences_PythonCode(t *testing.T) {
	raw := "```python\ndef run(df, config):\n    return {}\n```"

	got := StripFences(raw)
	assert.Equal(t, "def run(df, config):\n    return {}", got)
}

func TestStripFences_NoFences(t *testing.T) {
	raw := "def run(df, config):\n    return {}"
	assert.Equal(t, raw, StripFences(raw))
}
