package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/rikchilvers/gledger/config"
	"github.com/rikchilvers/gledger/reader"
	"github.com/rikchilvers/gledger/reports"
	"github.com/rikchilvers/gledger/telemetry"
)

// journalArgs are the arguments shared by every report command.
type journalArgs struct {
	File  string `help:"Journal file to read (falls back to $LEDGER_FILE, then the configured default)." arg:"" optional:"" type:"path"`
	Watch bool   `help:"Re-run the report when a journal file changes." short:"w"`
}

type PrintCmd struct{ journalArgs }

func (cmd *PrintCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, cmd.journalArgs, reports.Print,
		reader.WithSortedTransactions())
}

type AccountsCmd struct{ journalArgs }

func (cmd *AccountsCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, cmd.journalArgs, reports.Accounts,
		reader.WithoutTransactions())
}

type BalanceCmd struct{ journalArgs }

func (cmd *BalanceCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, cmd.journalArgs, reports.Balance,
		reader.WithoutTransactions())
}

type BudgetCmd struct{ journalArgs }

func (cmd *BudgetCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, cmd.journalArgs, reports.Budget)
}

type StatsCmd struct{ journalArgs }

func (cmd *StatsCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, cmd.journalArgs, reports.Stats,
		reader.WithSortedTransactions())
}

// runReport resolves the journal path, reads it and feeds the result to
// the report builder. With --watch it keeps re-running the report whenever
// one of the journal's source files changes.
func runReport(kctx *kong.Context, globals *Globals, args journalArgs, build func(io.Writer, *reader.Journal) error, opts ...reader.Option) error {
	if globals.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		colorEnabled = false
	}

	path, err := resolveJournalPath(args.File, cfg)
	if err != nil {
		return err
	}

	run := func() (*reader.Journal, error) {
		runCtx := context.Background()

		var collector telemetry.Collector
		if globals.Telemetry {
			collector = telemetry.NewTimingCollector()
			runCtx = telemetry.WithCollector(runCtx, collector)
		}

		j, err := reader.New(opts...).Read(runCtx, path)

		if collector != nil {
			_, _ = fmt.Fprintln(kctx.Stderr)
			collector.Report(kctx.Stderr)
		}

		if err != nil {
			printError(kctx.Stderr, err.Error())
			return nil, err
		}

		return j, build(kctx.Stdout, j)
	}

	j, err := run()

	if !args.Watch {
		if err != nil {
			kctx.Exit(1)
		}
		return nil
	}

	for {
		// On a failed read we have no source list, so fall back to
		// watching the root file until it parses again.
		files := []string{path}
		if j != nil && len(j.Sources) > 0 {
			files = j.Sources
		}

		changed, err := awaitChange(files)
		if err != nil {
			return err
		}
		printInfof(kctx.Stderr, "%s changed", filepath.Base(changed))

		j, _ = run()
	}
}

// resolveJournalPath decides which journal to read: the argument, then
// $LEDGER_FILE, then the configured default, then a prompt.
func resolveJournalPath(arg string, cfg *config.Config) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if env := os.Getenv("LEDGER_FILE"); env != "" {
		return env, nil
	}
	if cfg.Journal != "" {
		return cfg.Journal, nil
	}

	path, err := promptJournalPath()
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("no journal file given; pass a path or set $LEDGER_FILE")
	}
	return path, nil
}
