package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FINCALC_LOG_LEVEL.
const EnvPrefix = "FINCALC"

// Settings holds application settings for the command line tools.
type Settings struct {
	LogLevel    string `mapstructure:"log_level"`    // debug, info, warn, error
	Format      string `mapstructure:"format"`       // console, json, csv
	PolicyFile  string `mapstructure:"policy"`       // optional policy YAML
	MetricsFile string `mapstructure:"metrics_file"` // optional prometheus textfile
	Debug       bool   `mapstructure:"debug"`
}

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	switch s.Format {
	case "console", "json", "csv":
	default:
		return fmt.Errorf("unknown output format %q", s.Format)
	}
	return nil
}

// LoadSettings merges, from lowest to highest precedence, built-in defaults,
// the optional YAML config file, FINCALC_* environment variables (a .env
// file in the working directory is loaded first) and any flags that were set.
func LoadSettings(configPath string, flags *pflag.FlagSet) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "console")
	v.SetDefault("policy", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for _, name := range []string{"format", "policy", "debug"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("metrics-file"); f != nil {
			if err := v.BindPFlag("metrics_file", f); err != nil {
				return nil, fmt.Errorf("bind flag metrics-file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if s.Debug {
		s.LogLevel = "debug"
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
