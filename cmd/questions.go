package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/config"
	"github.com/abhisek/pathfinder/internal/logger"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions of the catalog (optionally filtered by section)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")

		_, c, log, err := commandEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		questions := c.Questions()
		if section != "" {
			s := catalog.Section(section)
			if !s.Valid() {
				return fmt.Errorf("unknown section %q (expected psychometric, technical or wiscar)", section)
			}
			questions = c.BySection(s)
		}

		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-4s  %-12s  %-8s  %-10s  %6s  %s\n",
			"ID", "Section", "Type", "Category", "Weight", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, q := range questions {
			prompt := q.Prompt
			if len(prompt) > 50 {
				prompt = prompt[:47] + "..."
			}
			category := q.Category
			if category == "" {
				category = "-"
			}
			fmt.Fprintf(out, "%-4s  %-12s  %-8s  %-10s  %6.1f  %s\n",
				q.ID, q.Section, q.Type, category, q.EffectiveWeight(), prompt)
		}

		fmt.Fprintf(out, "\n%d questions (%s)\n", len(questions), c.Version())
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("section", "", "Filter by section (psychometric, technical or wiscar)")
}

// commandEnv loads config, a stderr logger and the catalog for the
// non-interactive commands.
func commandEnv(cmd *cobra.Command) (config.Config, *catalog.Catalog, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	c, err := loadCatalog(cfg, log)
	if err != nil {
		_ = log.Sync()
		return config.Config{}, nil, nil, err
	}
	return cfg, c, log, nil
}
