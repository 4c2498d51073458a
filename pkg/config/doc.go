// Package config handles configuration management for bootstrap.
//
// Configuration is layered: the embedded defaults, then the project file
// (.bootstrap.toml or bootstrap.toml in the project root, or an explicit
// path), then BOOTSTRAP_* environment variables.
package config
