package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the `env`-tagged fields of cfg. A field whose variable is
// unset keeps its current value unless it carries an envDefault tag.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
