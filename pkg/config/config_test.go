package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("minutes", 1440, "")
	flags.Uint64("seed", 0, "")
	flags.String("chart-path", "warehouse_usage_plot.png", "")
	flags.StringP("output", "o", "text", "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1440, cfg.Minutes)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "warehouse_usage_plot.png", cfg.ChartPath)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", newFlagSet())
	require.NoError(t, err)

	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WAREHOUSE_MINUTES", "60")
	t.Setenv("WAREHOUSE_SEED", "1234")
	t.Setenv("WAREHOUSE_CHART_PATH", "out/chart.png")
	t.Setenv("WAREHOUSE_OUTPUT", "json")
	t.Setenv("WAREHOUSE_VERBOSE", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Minutes)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "out/chart.png", cfg.ChartPath)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Verbose)
}

func TestLoad_FromFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "warehouse.yaml")
	content := `minutes: 720
seed: 7
chart_path: "charts/usage.png"
output: "csv"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := Load(path, newFlagSet())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 720, cfg.Minutes)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "charts/usage.png", cfg.ChartPath)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warehouse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minutes: 720\noutput: csv\n"), 0o644))
	t.Setenv("WAREHOUSE_MINUTES", "360")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--minutes", "90"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	// Flag beats env, env beats file, file beats default
	assert.Equal(t, 90, cfg.Minutes)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoad_UnchangedFlagsDoNotOverrideEnv(t *testing.T) {
	t.Setenv("WAREHOUSE_OUTPUT", "html")

	cfg, err := Load("", newFlagSet())
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.OutputFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name          string
		setupConfig   func(*Config)
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid default config",
			setupConfig: func(c *Config) {},
		},
		{
			name:        "zero minutes is allowed",
			setupConfig: func(c *Config) { c.Minutes = 0 },
		},
		{
			name:          "negative minutes",
			setupConfig:   func(c *Config) { c.Minutes = -1 },
			expectError:   true,
			errorContains: "minutes must be >= 0",
		},
		{
			name:          "empty chart path",
			setupConfig:   func(c *Config) { c.ChartPath = "" },
			expectError:   true,
			errorContains: "chart path must be set",
		},
		{
			name:          "non-png chart path",
			setupConfig:   func(c *Config) { c.ChartPath = "usage.svg" },
			expectError:   true,
			errorContains: "must end in .png",
		},
		{
			name:        "upper-case extension",
			setupConfig: func(c *Config) { c.ChartPath = "USAGE.PNG" },
		},
		{
			name:          "unknown output format",
			setupConfig:   func(c *Config) { c.OutputFormat = "yaml" },
			expectError:   true,
			errorContains: "output must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.setupConfig(cfg)

			err := cfg.Validate()

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
