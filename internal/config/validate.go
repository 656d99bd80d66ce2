package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Mode == "" {
		cfg.Mode = ModeStrict
	}
	if cfg.Mode != ModeStrict && cfg.Mode != ModePermissive {
		return fmt.Errorf("config: unknown mode %q (must be strict or permissive)", cfg.Mode)
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "_mod"
	}
	if strings.ContainsAny(cfg.OutputSuffix, `/\`) {
		return fmt.Errorf("config: output-suffix %q must not contain path separators", cfg.OutputSuffix)
	}
	return nil
}
