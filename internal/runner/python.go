package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// harness drives the generated code inside the Python subprocess. It
// loads the dataset and config, execs the generated module, calls its
// run(df, config) entry point, and emits the result as JSON on stdout.
// Any exception exits non-zero with the traceback on stderr.
const harness = `
import json, sys, traceback
import pandas as pd

code_path, csv_path, cfg_path = sys.argv[1], sys.argv[2], sys.argv[3]

try:
    df = pd.read_csv(csv_path)
    with open(cfg_path) as f:
        config = json.load(f)
    with open(code_path) as f:
        src = f.read()
    ns = {}
    exec(compile(src, "generated.py", "exec"), ns, ns)
    run = ns.get("run")
    if not callable(run):
        raise ValueError("generated code did not define a callable run(df, config)")
    out = run(df, config)
    json.dump(out, sys.stdout, default=str)
except Exception as e:
    sys.stderr.write(f"{type(e).__name__}: {e}\n---\n")
    sys.stderr.write(traceback.format_exc())
    sys.exit(3)
`

// PythonRunner executes generated code in a Python subprocess. It assumes
// the deployment's interpreter already enforces whatever isolation policy
// is required; this is process separation, not a sandbox.
type PythonRunner struct {
	python string
}

// NewPythonRunner creates a PythonRunner using the given interpreter
// binary, or "python3" when empty.
func NewPythonRunner(python string) *PythonRunner {
	if python == "" {
		python = "python3"
	}
	return &PythonRunner{python: python}
}

func (r *PythonRunner) Run(ctx context.Context, code string, frame *domain.Frame, cfg domain.ForecastConfig) (*domain.ForecastResult, error) {
	dir, err := os.MkdirTemp("", "codeplan-run-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	codePath := filepath.Join(dir, "generated.py")
	if err := os.WriteFile(codePath, []byte(code), 0600); err != nil {
		return nil, fmt.Errorf("writing generated code: %w", err)
	}

	csvPath := filepath.Join(dir, "data.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return nil, fmt.Errorf("creating dataset file: %w", err)
	}
	if err := dataset.WriteCSV(csvFile, frame); err != nil {
		csvFile.Close()
		return nil, fmt.Errorf("writing dataset file: %w", err)
	}
	csvFile.Close()

	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	cfgPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(cfgPath, cfgData, 0600); err != nil {
		return nil, fmt.Errorf("writing config file: %w", err)
	}

	cmd := exec.CommandContext(ctx, r.python, "-c", harness, codePath, csvPath, cfgPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, failureFromStderr(stderr.String(), err)
	}

	var result domain.ForecastResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, &Failure{
			Message: "execution produced unparseable output",
			Detail:  fmt.Sprintf("decode error: %v\noutput:\n%s", err, truncate(stdout.String(), 4000)),
		}
	}
	return &result, nil
}

// failureFromStderr splits the harness stderr into the short message
// (first line before the --- marker) and the full diagnostic detail.
func failureFromStderr(stderr string, runErr error) *Failure {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return &Failure{
			Message: fmt.Sprintf("execution failed: %v", runErr),
			Detail:  runErr.Error(),
		}
	}

	msg := stderr
	if idx := strings.Index(stderr, "\n---\n"); idx >= 0 {
		msg = stderr[:idx]
	} else if idx := strings.IndexByte(stderr, '\n'); idx >= 0 {
		msg = stderr[:idx]
	}
	return &Failure{
		Message: strings.TrimSpace(msg),
		Detail:  truncate(stderr, 8000),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n... (truncated)"
}
