// Package config provides configuration management for gnsyn.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars (and .env) >
// config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - NCBI: base_url, tool, email, api_key, user_agent, timeout_sec,
//     throttle_ms
//   - Enrich: progress_every, with_canonical
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Input, Output, Limit
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNSYN_ prefix with underscores for nesting:
//
//	GNSYN_NCBI_EMAIL=me@example.org
//	GNSYN_NCBI_API_KEY=0123456789abcdef
//	GNSYN_NCBI_THROTTLE_MS=340
//	GNSYN_LOG_LEVEL=debug
package config

// DefaultInput is the table read when --input is not given.
const DefaultInput = "ndm_foods.csv"

// Config represents the complete gnsyn configuration.
type Config struct {
	// Input is the path to the table with food names.
	Input string `mapstructure:"-" yaml:"-"`

	// Output is the path where the enriched table is written.
	// Empty value means the input file is overwritten.
	Output string `mapstructure:"-" yaml:"-"`

	// Limit restricts processing to the first Limit rows.
	// Zero means all rows.
	Limit int `mapstructure:"-" yaml:"-"`

	// NCBI contains settings for NCBI E-utilities requests.
	NCBI NCBIConfig `mapstructure:"ncbi" yaml:"ncbi"`

	// Enrich contains settings of the enrichment pass.
	Enrich EnrichConfig `mapstructure:"enrich" yaml:"enrich"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// NCBIConfig contains parameters of NCBI E-utilities service.
type NCBIConfig struct {
	// BaseURL is the E-utilities root, esearch.fcgi and efetch.fcgi
	// are appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Tool identifies the software to NCBI (the 'tool' parameter).
	Tool string `mapstructure:"tool" yaml:"tool"`

	// Email of a person responsible for the requests (the 'email' parameter).
	Email string `mapstructure:"email" yaml:"email"`

	// APIKey is optional. NCBI allows higher request rates with a key.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// UserAgent header of HTTP requests.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// TimeoutSec is a ceiling for one request, after it the call is a
	// failure.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// ThrottleMs is a pause after every request to stay within NCBI
	// rate limits (3 requests per second without API key).
	ThrottleMs int `mapstructure:"throttle_ms" yaml:"throttle_ms"`
}

// EnrichConfig contains settings of the row pipeline.
type EnrichConfig struct {
	// ProgressEvery sets how often (in rows) progress is reported.
	ProgressEvery int `mapstructure:"progress_every" yaml:"progress_every"`

	// WithCanonical adds a canonical form of the scientific name (as
	// produced by GNparser) to the list of search candidates.
	WithCanonical bool `mapstructure:"with_canonical" yaml:"with_canonical"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: DefaultInput,
		NCBI: NCBIConfig{
			BaseURL:    "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			Tool:       "gnsyn",
			Email:      "example@example.com",
			UserAgent:  "gnsyn/0.1 (+https://github.com/gnames/gnsyn)",
			TimeoutSec: 25,
			ThrottleMs: 340,
		},
		Enrich: EnrichConfig{
			ProgressEvery: 500,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}
	return res
}

// OutputPath returns the path for the enriched table.
// If Output is not set, the input file is overwritten.
func (c *Config) OutputPath() string {
	if c.Output == "" {
		return c.Input
	}
	return c.Output
}
