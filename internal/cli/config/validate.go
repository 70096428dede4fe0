package config

import "fmt"

var validOutputs = map[string]bool{
	"table":    true,
	"json":     true,
	"csv":      true,
	"md":       true,
	"markdown": true,
}

func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", cfg.Port)
	}
	if !validOutputs[cfg.OutputFormat] {
		return fmt.Errorf("invalid output format %q: must be one of table, json, csv, md", cfg.OutputFormat)
	}
	if cfg.LearnerID == "" {
		return fmt.Errorf("learner must not be empty")
	}
	return nil
}
