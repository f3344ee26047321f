package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()
	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnsyn"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnsyn", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnsyn", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "ndm_foods.csv", cfg.Input)
		assert.Equal(t, "", cfg.Output)
		assert.Equal(t, 0, cfg.Limit)

		assert.Equal(t,
			"https://eutils.ncbi.nlm.nih.gov/entrez/eutils", cfg.NCBI.BaseURL)
		assert.Equal(t, "gnsyn", cfg.NCBI.Tool)
		assert.Equal(t, "", cfg.NCBI.APIKey)
		assert.Equal(t, 25, cfg.NCBI.TimeoutSec)
		assert.Equal(t, 340, cfg.NCBI.ThrottleMs)

		assert.Equal(t, 500, cfg.Enrich.ProgressEvery)
		assert.False(t, cfg.Enrich.WithCanonical)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestOutputPath(t *testing.T) {
	t.Run("overwrites input by default", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptInput("foods.csv")})
		assert.Equal(t, "foods.csv", cfg.OutputPath())
	})

	t.Run("uses output when set", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptInput("foods.csv"),
			config.OptOutput("out.csv"),
		})
		assert.Equal(t, "out.csv", cfg.OutputPath())
	})
}

func TestOptionLimit(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets positive limit",
			input:    10,
			expected: 10,
		},
		{
			name:     "zero means all rows",
			input:    0,
			expected: 0,
		},
		{
			name:     "ignores negative",
			input:    -3,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLimit(tt.input)})
			assert.Equal(t, tt.expected, cfg.Limit)
		})
	}
}

func TestOptionNCBIBaseURL(t *testing.T) {
	def := config.New().NCBI.BaseURL
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080/eutils",
			expected: "http://localhost:8080/eutils",
		},
		{
			name:     "removes trailing slash",
			input:    " https://mirror.example.org/eutils/ ",
			expected: "https://mirror.example.org/eutils",
		},
		{
			name:     "ignores url without scheme",
			input:    "mirror.example.org",
			expected: def,
		},
		{
			name:     "ignores empty",
			input:    "",
			expected: def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptNCBIBaseURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.NCBI.BaseURL)
		})
	}
}

func TestOptionNCBIThrottle(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets value",
			input:    100,
			expected: 100,
		},
		{
			name:     "allows zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "ignores negative",
			input:    -1,
			expected: 340,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptNCBIThrottleMs(tt.input)})
			assert.Equal(t, tt.expected, cfg.NCBI.ThrottleMs)
		})
	}
}

func TestOptionNCBITimeout(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptNCBITimeoutSec(0)})
	assert.Equal(t, 25, cfg.NCBI.TimeoutSec, "zero timeout is ignored")

	cfg.Update([]config.Option{config.OptNCBITimeoutSec(5)})
	assert.Equal(t, 5, cfg.NCBI.TimeoutSec)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("STDERR")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptNCBIBaseURL("http://127.0.0.1:9999/eutils"),
			config.OptNCBITool("mytool"),
			config.OptNCBIEmail("me@example.org"),
			config.OptNCBIAPIKey("secret"),
			config.OptNCBIUserAgent("agent/1.0"),
			config.OptNCBITimeoutSec(3),
			config.OptNCBIThrottleMs(0),
			config.OptEnrichProgressEvery(10),
			config.OptEnrichWithCanonical(true),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.NCBI, newCfg.NCBI)
		assert.Equal(t, original.Enrich, newCfg.Enrich)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptInput("in.csv"),
			config.OptOutput("out.csv"),
			config.OptLimit(7),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, config.DefaultInput, newCfg.Input)
		assert.Equal(t, "", newCfg.Output)
		assert.Equal(t, 0, newCfg.Limit)
	})
}
