package executor

import "github.com/dmitrymomot/commons/pkg/config"

// Config holds pool settings read from the environment.
type Config struct {
	Workers int    `env:"COMMONS_EXECUTOR_WORKERS" envDefault:"4"`
	Name    string `env:"COMMONS_EXECUTOR_NAME" envDefault:"pool"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewPoolFromConfig creates a fixed pool sized by cfg. Options are applied
// after the configured name.
func NewPoolFromConfig(cfg Config, opts ...Option) (*Pool, error) {
	return NewFixedPool(cfg.Workers, append([]Option{WithName(cfg.Name)}, opts...)...)
}
