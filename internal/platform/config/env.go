package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix scopes every variable the command reads.
const EnvPrefix = "HERB_MARKET_"

// ParseEnv loads configuration from HERB_MARKET_-prefixed environment
// variables. Tags name the variable without the prefix.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
