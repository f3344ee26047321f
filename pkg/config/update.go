package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (Input, Output, Limit, HomeDir).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.NCBI.BaseURL
	if s != "" {
		res = append(res, OptNCBIBaseURL(s))
	}

	s = c.NCBI.Tool
	if s != "" {
		res = append(res, OptNCBITool(s))
	}

	s = c.NCBI.Email
	if s != "" {
		res = append(res, OptNCBIEmail(s))
	}

	s = c.NCBI.APIKey
	if s != "" {
		res = append(res, OptNCBIAPIKey(s))
	}

	s = c.NCBI.UserAgent
	if s != "" {
		res = append(res, OptNCBIUserAgent(s))
	}

	i = c.NCBI.TimeoutSec
	if i > 0 {
		res = append(res, OptNCBITimeoutSec(i))
	}

	// zero throttle is meaningful, negative came from a broken file
	i = c.NCBI.ThrottleMs
	if i >= 0 {
		res = append(res, OptNCBIThrottleMs(i))
	}

	i = c.Enrich.ProgressEvery
	if i > 0 {
		res = append(res, OptEnrichProgressEvery(i))
	}

	res = append(res, OptEnrichWithCanonical(c.Enrich.WithCanonical))

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}

	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}

	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegInt(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid http(s) URL, ignoring '%s'", name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}

	if _, ok := data[name][val]; ok {
		return true
	}

	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
