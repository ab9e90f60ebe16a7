package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/agent"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/cli"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/db"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/llm"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/runner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory, matching deployment habit.
	_ = godotenv.Load()

	dbPath := os.Getenv("CODEPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".codeplan", "codeplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uploadRepo := repository.NewSQLiteUploadRepo(database)
	datasets := dataset.NewStore()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	advisor := agent.NewLLMAdvisor(llm.NewChatClient(llmCfg, observer))

	pyRunner := runner.NewPythonRunner(os.Getenv("CODEPLAN_PYTHON"))

	maxAttempts := agent.DefaultMaxAttempts
	if v := os.Getenv("CODEPLAN_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			maxAttempts = n
		}
	}

	orch := agent.New(advisor, pyRunner, datasets, sessionRepo, maxAttempts)

	app := &cli.App{
		Orchestrator: orch,
		Datasets:     datasets,
		Uploads:      uploadRepo,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
