package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seren4de/a11ylead/internal/app"
	"github.com/seren4de/a11ylead/internal/cli"
	"github.com/seren4de/a11ylead/internal/grading"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/report"
	"github.com/seren4de/a11ylead/internal/session"
	"github.com/seren4de/a11ylead/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "a11ylead: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cliArgs, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}

	logger := logging.NewStdoutLogger("a11ylead")

	cfg := app.DefaultConfig()
	if cliArgs.EnginePath != "" {
		cfg.SessionCfg.EnginePath = cliArgs.EnginePath
	}
	if cliArgs.Backend != "" {
		cfg.SessionCfg.Backend = session.Backend(cliArgs.Backend)
	}

	var st *store.Store
	if cliArgs.DBPath != "" {
		st, err = store.Open(cliArgs.DBPath, logger)
		if err != nil {
			return fmt.Errorf("opening audit history: %w", err)
		}
		defer st.Close()
	}

	orchestrator := app.NewOrchestrator(cfg, st, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := orchestrator.RunAudit(ctx, cliArgs.Target, cliArgs.MaxPages)
	if err != nil {
		return err
	}

	if grading.NoData(result.Profile) {
		fmt.Fprintln(os.Stderr, "warning: no pages produced results; grade reflects missing data, not a clean site")
	}

	switch cliArgs.Format {
	case "csv":
		return report.WriteCSV(os.Stdout, result.Profile, result.Grade)
	case "json":
		data, err := report.RenderJSON(result.Profile, result.Grade)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	default:
		fmt.Print(report.RenderText(result.Profile, result.Grade))
		return nil
	}
}
