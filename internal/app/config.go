package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Roots are the directories to scan, in the order they were given.
	Roots []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Roots) == 0 {
		return nil, errors.New("Roots is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
