package runner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureFromStderr_MarkerSplit(t *testing.T) {
	stderr := "KeyError: 'ds'\n---\nTraceback (most recent call last):\n  File \"generated.py\", line 3\nKeyError: 'ds'"

	f := failureFromStderr(stderr, errors.New("exit status 3"))
	assert.Equal(t, "KeyError: 'ds'", f.Message)
	assert.Contains(t, f.Detail, "Traceback (most recent call last):")
}

func TestFailureFromStderr_NoMarker(t *testing.T) {
	stderr := "something went wrong\nmore context here"

	f := failureFromStderr(stderr, errors.New("exit status 1"))
	assert.Equal(t, "something went wrong", f.Message)
	assert.Equal(t, stderr, f.Detail)
}

func TestFailureFromStderr_EmptyStderr(t *testing.T) {
	f := failureFromStderr("", errors.New("signal: killed"))
	assert.Contains(t, f.Message, "execution failed")
	assert.Contains(t, f.Message, "signal: killed")
}

func TestFailureFromStderr_SingleLine(t *testing.T) {
	f := failureFromStderr("SyntaxError: invalid syntax", errors.New("exit status 3"))
	assert.Equal(t, "SyntaxError: invalid syntax", f.Message)
}

func TestFailure_Error(t *testing.T) {
	var err error = &Failure{Message: "short", Detail: "long"}
	assert.Equal(t, "short", err.Error())

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "long", f.Detail)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))

	long := strings.Repeat("x", 100)
	got := truncate(long, 40)
	assert.True(t, strings.HasSuffix(got, "... (truncated)"))
	assert.Len(t, got, 40+len("\n... (truncated)"))
}

func TestNewPythonRunner_DefaultInterpreter(t *testing.T) {
	assert.Equal(t, "python3", NewPythonRunner("").python)
	assert.Equal(t, "/usr/bin/python3.11", NewPythonRunner("/usr/bin/python3.11").python)
}
