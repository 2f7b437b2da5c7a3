package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/pathfinder/internal/app"
	"github.com/abhisek/pathfinder/internal/logger"
	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/session"
)

var errNotTerminal = errors.New("the interactive assessment needs a terminal; use `pathfinder score` for scripted runs")

// isTerminal reports whether a writer is a TTY.
var isTerminal = func(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// runApp resolves config, catalog and logger, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.ForTUI(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Session:      session.New(c, scoring.New(c), log),
		TopCareers:   cfg.Results.TopCareers,
		ExportDir:    cfg.Export.Dir,
		ExportFormat: format,
		Logger:       log,
	})
}
