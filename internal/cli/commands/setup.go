// Package commands implements the sqlacademy subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/cli/config"
	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
)

// CommandContext holds common dependencies for CLI commands. Fixture,
// Sandbox and Progress are nil until the corresponding open method runs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Fixture  *fixture.Store
	Sandbox  *sandbox.Sandbox
	Progress *progress.Engine

	progressStore progress.Store
}

// NewCommandContext creates a CommandContext from the command's
// configuration and logger.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// OpenFixture boots the in-memory lesson database and its sandbox.
func (c *CommandContext) OpenFixture(ctx context.Context) error {
	fx := fixture.New(c.Logger)
	if err := fx.Open(ctx); err != nil {
		return err
	}
	if err := fx.Initialize(ctx); err != nil {
		_ = fx.Close()
		return err
	}
	c.Fixture = fx
	c.Sandbox = sandbox.New(fx.DB(), c.Logger)
	return nil
}

// OpenProgress opens the persistent progress store, applies migrations
// and creates the engine on top of it.
func (c *CommandContext) OpenProgress() error {
	statePath := c.Cfg.StatePath
	if statePath != ":memory:" {
		stateDir := filepath.Dir(statePath)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0750); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	store := progress.NewSQLiteStore()
	if err := store.Open(statePath); err != nil {
		return err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return err
	}
	c.progressStore = store
	c.Progress = progress.NewEngine(store, curriculum.Modules(), c.Logger)
	return nil
}

// Close releases whatever the context opened.
func (c *CommandContext) Close() {
	if c.progressStore != nil {
		_ = c.progressStore.Close()
	}
	if c.Fixture != nil {
		_ = c.Fixture.Close()
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	port := config.DefaultPort
	if v := os.Getenv("SQLACADEMY_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return &config.Config{
		Port:          port,
		SessionSecret: getEnvOrDefault("SQLACADEMY_SESSION_SECRET", config.DefaultSessionSecret),
		StatePath:     getEnvOrDefault("SQLACADEMY_STATE_PATH", config.DefaultStateFile),
		LearnerID:     getEnvOrDefault("SQLACADEMY_LEARNER", config.DefaultLearner),
		Verbose:       os.Getenv("SQLACADEMY_VERBOSE") == "true",
		OutputFormat:  getEnvOrDefault("SQLACADEMY_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
