// Package config loads, validates, and normalizes the TOML configuration for
// the image organizer. Loading always starts from repository defaults, so a
// missing config file yields a fully usable configuration.
package config
