// Package config provides configuration management for the sqlacademy CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Port          int    `koanf:"port"`
	SessionSecret string `koanf:"session_secret"`
	StatePath     string `koanf:"state_path"`
	LearnerID     string `koanf:"learner"`
	Verbose       bool   `koanf:"verbose"`
	OutputFormat  string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPort      = 8765
	DefaultStateFile = ".sqlacademy/progress.db"
	DefaultLearner   = "local"
	DefaultOutput    = "table"

	// DefaultSessionSecret signs browser session cookies when no secret is
	// configured. Fine for local use; set session_secret when exposing
	// the server.
	DefaultSessionSecret = "sqlacademy-insecure-dev-secret"
)
