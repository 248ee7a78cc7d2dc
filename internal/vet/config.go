package vet

import (
	"os"
	"strconv"
	"strings"
)

// Config holds configuration for a Check run.
type Config struct {
	// Dir is the directory patterns are resolved in.
	// Defaults to the current directory.
	Dir string

	// Tests includes test files and test variants of packages.
	// Defaults to FREEZEVET_TESTS.
	Tests bool

	// Tags are build tags passed to the go command.
	// Defaults to the comma-separated FREEZEVET_TAGS.
	Tags []string

	// Overlay maps absolute file paths to contents that replace the files
	// on disk.
	Overlay map[string][]byte
}

// DefaultConfig returns the default check configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	if v := os.Getenv("FREEZEVET_TESTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tests = b
		}
	}
	if v := os.Getenv("FREEZEVET_TAGS"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				cfg.Tags = append(cfg.Tags, tag)
			}
		}
	}
	return cfg
}

func (c *Config) buildFlags() []string {
	if len(c.Tags) == 0 {
		return nil
	}
	return []string{"-tags=" + strings.Join(c.Tags, ",")}
}
