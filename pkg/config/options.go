package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInput sets the path to the input table.
// Runtime-only field - not in ToOptions().
func OptInput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input", s) {
			c.Input = s
		}
	}
}

// OptOutput sets the path to the output table.
// Runtime-only field - not in ToOptions().
func OptOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output", s) {
			c.Output = s
		}
	}
}

// OptLimit restricts the number of processed rows, 0 means no limit.
// Runtime-only field - not in ToOptions().
func OptLimit(i int) Option {
	return func(c *Config) {
		if isValidNonNegInt("Limit", i) {
			c.Limit = i
		}
	}
}

// OptNCBIBaseURL sets the root URL of E-utilities.
func OptNCBIBaseURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("NCBI Base URL", s) {
			c.NCBI.BaseURL = s
		}
	}
}

// OptNCBITool sets the 'tool' parameter sent to NCBI.
func OptNCBITool(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI Tool", s) {
			c.NCBI.Tool = s
		}
	}
}

// OptNCBIEmail sets the 'email' parameter sent to NCBI.
func OptNCBIEmail(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI Email", s) {
			c.NCBI.Email = s
		}
	}
}

// OptNCBIAPIKey sets the NCBI API key.
func OptNCBIAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI API Key", s) {
			c.NCBI.APIKey = s
		}
	}
}

// OptNCBIUserAgent sets User-Agent header for NCBI requests.
func OptNCBIUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI User Agent", s) {
			c.NCBI.UserAgent = s
		}
	}
}

// OptNCBITimeoutSec sets the per-request timeout in seconds.
func OptNCBITimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("NCBI Timeout", i) {
			c.NCBI.TimeoutSec = i
		}
	}
}

// OptNCBIThrottleMs sets the pause after each request in milliseconds.
// Zero is allowed (useful for local mirrors and tests).
func OptNCBIThrottleMs(i int) Option {
	return func(c *Config) {
		if isValidNonNegInt("NCBI Throttle", i) {
			c.NCBI.ThrottleMs = i
		}
	}
}

// OptEnrichProgressEvery sets how often progress is reported.
func OptEnrichProgressEvery(i int) Option {
	return func(c *Config) {
		if isValidInt("Progress Every", i) {
			c.Enrich.ProgressEvery = i
		}
	}
}

// OptEnrichWithCanonical toggles canonical form search candidates.
func OptEnrichWithCanonical(b bool) Option {
	return func(c *Config) {
		c.Enrich.WithCanonical = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
