package canaries

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the defaults a run starts from. Command-line flags override it.
type Config struct {
	TemplatePath  string `env:"CANARIES_TEMPLATE" envDefault:"template.html"`
	OutputPath    string `env:"CANARIES_OUTPUT"   envDefault:"canaries.html"`
	Policy        string `env:"CANARIES_POLICY"   envDefault:"all"`
	Jobs          int    `env:"CANARIES_JOBS"     envDefault:"1"`
	BugsnagAPIKey string `env:"CANARIES_BUGSNAG_API_KEY"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParsePolicy(cfg.Policy); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
