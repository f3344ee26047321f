// Package templates provides embedded configuration templates.
package templates

import _ "embed"

// ConfigYAML is the documented default config.yaml.
//
//go:embed config.yaml
var ConfigYAML string
