// Package config loads pathfinder settings from defaults, a YAML config
// file, a .env file, PATHFINDER_* environment variables and command-line
// flags, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PATHFINDER_LOG_LEVEL for log.level.
const EnvPrefix = "PATHFINDER"

// Config is the resolved application configuration.
type Config struct {
	// Catalog is the path to an alternate question catalog. Empty selects
	// the built-in catalog.
	Catalog string        `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Results ResultsConfig `mapstructure:"results"`
	Export  ExportConfig  `mapstructure:"export"`
}

// LogConfig controls log level, encoding and destination.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	// File receives log output. Empty means the TUI logs nowhere and the
	// non-interactive commands log to stderr.
	File string `mapstructure:"file"`
}

// ResultsConfig controls what the results screen lists.
type ResultsConfig struct {
	TopCareers int `mapstructure:"top_careers" validate:"min=1,max=20"`
}

// ExportConfig sets the default format and directory for exported reports.
type ExportConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text txt markdown md json yaml yml"`
	Dir    string `mapstructure:"dir" validate:"required"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("results.top_careers", 3)
	v.SetDefault("export.format", "markdown")
	v.SetDefault("export.dir", ".")
}

// DefaultPath returns $XDG_CONFIG_HOME/pathfinder/config.yaml, falling back
// to ~/.config/pathfinder/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pathfinder", "config.yaml")
}

// Prepare wires defaults, the config file and environment lookups into v.
// An explicit path must exist; the default path may be missing.
func Prepare(v *viper.Viper, path string) error {
	SetDefaults(v)

	// .env only seeds the process environment; real variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && isNotFound(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Export.Format = strings.ToLower(strings.TrimSpace(cfg.Export.Format))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field and reports all problems in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	errs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Sprintf("%s: %s", keyFor(fe.Namespace()), describe(fe)))
	}
	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
}

// keyFor maps a validator namespace such as "Config.Log.Level" onto the
// config key "log.level".
func keyFor(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		switch p {
		case "TopCareers":
			parts[i] = "top_careers"
		default:
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("%v is below the minimum %s", fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%v is above the maximum %s", fe.Value(), fe.Param())
	case "required":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
