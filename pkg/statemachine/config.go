package statemachine

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/stateful/pkg/config"
	"github.com/dmitrymomot/stateful/pkg/logger"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "STATEMACHINE_"

// Config holds process-wide defaults for registries.
type Config struct {
	Strict       bool   `env:"STRICT" envDefault:"false"`
	InitialState string `env:"INITIAL_STATE" envDefault:"open"`
	StateAttr    string `env:"STATE_ATTR" envDefault:"state"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from STATEMACHINE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, fmt.Errorf("load statemachine config: %w", err)
	}
	return cfg, nil
}

// NewRegistryFromConfig creates a registry whose logger and defaults come from
// cfg. opts are applied afterwards and may override them.
func NewRegistryFromConfig(cfg Config, opts ...RegistryOption) (*Registry, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	format := logger.Format(strings.ToLower(strings.TrimSpace(cfg.LogFormat)))
	switch format {
	case "":
		format = logger.FormatJSON
	case logger.FormatJSON, logger.FormatText:
	default:
		return nil, configError("unsupported log format '%s'", cfg.LogFormat)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithComponent("statemachine"),
	)

	base := []RegistryOption{
		WithLogger(log),
		WithStrictDeclarations(cfg.Strict),
		WithDefaultInitialState(State(cfg.InitialState)),
		WithDefaultStateAttr(cfg.StateAttr),
	}
	return NewRegistry(append(base, opts...)...), nil
}
