// Package config loads, validates, and normalizes docshard configuration.
//
// Configuration comes from a TOML file (~/.config/docshard/config.toml by
// default, or a docshard.toml in the working directory) layered over
// built-in defaults that match the standard CC-100 cleaning parameters.
package config
