package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answers file without the interactive UI",
	Example: "  pathfinder score --responses answers.yaml\n" +
		"  pathfinder score --responses answers.json --format json --out result.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("responses")
		formatFlag, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		top, _ := cmd.Flags().GetInt("top")

		cfg, c, log, err := commandEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if formatFlag == "" {
			formatFlag = cfg.Export.Format
		}
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		if top <= 0 {
			top = cfg.Results.TopCareers
		}

		set, err := session.LoadResponses(path, c, log)
		if err != nil {
			return err
		}
		sum := session.Evaluate(c, scoring.New(c), set, time.Now())
		log.Info("responses scored",
			zap.String("session_id", sum.SessionID),
			zap.String("catalog_version", sum.CatalogVersion),
			zap.Int("answered", sum.Answered),
			zap.Int("total", sum.Total),
			zap.Int("overall", sum.Report.Overall),
			zap.String("recommendation", string(sum.Report.Recommendation)),
		)
		if sum.Answered < sum.Total {
			log.Warn("answers file is incomplete", zap.Int("missing", sum.Total-sum.Answered))
		}

		opts := report.Options{Format: format, TopCareers: top}
		if outPath == "" || outPath == "-" {
			return report.Render(cmd.OutOrStdout(), sum, opts)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := report.Render(f, sum, opts); err != nil {
			f.Close()
			return fmt.Errorf("render report: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", outPath)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("responses", "", "YAML or JSON answers file ([{question: p1, value: 4}, ...])")
	scoreCmd.Flags().String("format", "", "Output format: text, markdown, json or yaml (default from config)")
	scoreCmd.Flags().String("out", "", "Write the report to this file instead of stdout")
	scoreCmd.Flags().Int("top", 0, "Number of career paths to include (default from config)")
	_ = scoreCmd.MarkFlagRequired("responses")
}
