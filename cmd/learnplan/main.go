package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexanderramin/learnplan/internal/cli"
	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/alexanderramin/learnplan/internal/llm"
	"github.com/alexanderramin/learnplan/internal/plan"
	"github.com/alexanderramin/learnplan/internal/server"
	"github.com/alexanderramin/learnplan/internal/subject"
	"github.com/alexanderramin/learnplan/internal/synthesis"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	logger := newLogger(os.Stderr, os.Getenv("LEARNPLAN_LOG_FORMAT"), os.Getenv("LEARNPLAN_LOG_LEVEL"))

	catalog, err := curriculum.New(curriculum.DefaultEntries())
	if err != nil {
		return fmt.Errorf("loading curriculum: %w", err)
	}
	classifier := subject.NewClassifier(catalog, nil)
	assembler := plan.NewAssembler(synthesis.NewEngine(catalog))

	// Wire the language model (only when enabled and configured)
	var client llm.LLMClient
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err = llm.NewClient(llmCfg, observer)
		if err != nil {
			logger.Warn("llm_disabled", "provider", string(llmCfg.Provider), "error", err.Error())
			client = nil
		}
	}

	plans := generation.NewService(client, classifier, assembler,
		generation.WithObserver(generation.NewSlogObserver(logger)))
	offline := generation.NewService(nil, classifier, assembler,
		generation.WithObserver(generation.NewSlogObserver(logger)))

	app := &cli.App{
		Plans:       plans,
		Offline:     offline,
		Catalog:     catalog,
		Classifier:  classifier,
		DefaultAddr: os.Getenv("LEARNPLAN_ADDR"),
		Serve: func(ctx context.Context, addr string) error {
			srv := server.NewServer(plans, catalog,
				server.WithLogger(logger),
				server.WithModelReady(client != nil))
			return srv.Run(ctx, addr)
		},
	}

	// Styled output only when stdout is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newLogger builds the process logger. format is "json" or "text"; level
// defaults to warn so CLI output stays quiet.
func newLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || strings.TrimSpace(level) == "" {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
