package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Career-fit assessment for aspiring EQ assessors",
	Long: "Pathfinder walks you through a psychometric, technical and WISCAR questionnaire\n" +
		"and tells you how well the EQ Assessor career fits you.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	fs := rootCmd.PersistentFlags()
	fs.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/pathfinder/config.yaml)")
	fs.String("catalog", "", "Path to a YAML or JSON question catalog (default: built-in)")
	fs.String("log-level", "", "Log level: debug, info, warn or error")
	fs.String("log-file", "", "Write logs to this file")
	fs.String("log-format", "", "Log format: console or json")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"catalog":    "catalog",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"log-format": "log.format",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// loadConfig resolves configuration from defaults, the config file, the
// environment and the command's flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	v := viper.New()
	if err := config.Prepare(v, path); err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		c := catalog.Default()
		logger.Debug("using built-in catalog",
			zap.String("catalog_version", c.Version()),
			zap.Int("questions", c.Len()),
		)
		return c, nil
	}
	c, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.String("catalog_version", c.Version()),
		zap.Int("questions", c.Len()),
	)
	return c, nil
}
