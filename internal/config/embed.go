// Package config loads and validates simulation configuration.
package config

import "embed"

// dataFS embeds the default configuration at build time.
//
//go:embed config.yaml
var dataFS embed.FS

const defaultFile = "config.yaml"
