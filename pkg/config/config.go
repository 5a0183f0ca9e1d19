package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/generator"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/visualizer"
)

// EnvPrefix namespaces environment overrides, e.g. WAREHOUSE_MINUTES
const EnvPrefix = "WAREHOUSE"

// Output formats understood by the CLI
var OutputFormats = []string{"text", "json", "csv", "html", "metrics"}

// Config holds application configuration
type Config struct {
	// Generation
	Minutes int    `mapstructure:"minutes"`
	Seed    uint64 `mapstructure:"seed"` // 0 derives a seed from the clock

	// Output
	ChartPath    string `mapstructure:"chart_path"`
	OutputFormat string `mapstructure:"output"`
	Verbose      bool   `mapstructure:"verbose"`
}

// flagKeys maps CLI flag names onto config keys
var flagKeys = map[string]string{
	"minutes":    "minutes",
	"seed":       "seed",
	"chart-path": "chart_path",
	"output":     "output",
	"verbose":    "verbose",
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		Minutes:      generator.DefaultMinutes,
		Seed:         0,
		ChartPath:    visualizer.DefaultChartPath,
		OutputFormat: "text",
		Verbose:      false,
	}
}

// Load layers defaults, an optional YAML file, WAREHOUSE_* environment
// variables and explicitly set flags, in increasing priority
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := NewConfig()
	v.SetDefault("minutes", defaults.Minutes)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("chart_path", defaults.ChartPath)
	v.SetDefault("output", defaults.OutputFormat)
	v.SetDefault("verbose", defaults.Verbose)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Minutes < 0 {
		return fmt.Errorf("minutes must be >= 0, got %d", c.Minutes)
	}
	if c.ChartPath == "" {
		return fmt.Errorf("chart path must be set")
	}
	if !strings.EqualFold(filepath.Ext(c.ChartPath), ".png") {
		return fmt.Errorf("chart path must end in .png, got %s", c.ChartPath)
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.OutputFormat)
	}
	return nil
}
