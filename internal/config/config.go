package config

import (
	"errors"
	"fmt"
	"io/fs"
	"montyhall/pkg/domain"
	"montyhall/pkg/serrors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the game itself, input
// prompting, console output and metrics.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	Log struct {
		// Level overrides the environment's default log level (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" env-default:"warn" yaml:"level"`
	} `yaml:"log"`

	// Game contains the defaults used when flags are not given
	Game struct {
		// Doors is the number of doors in every round
		Doors int `env:"GAME_DOORS" env-default:"3" yaml:"doors"`
		// Rounds is the number of interactive rounds to play
		Rounds int `env:"GAME_ROUNDS" env-default:"1" yaml:"rounds"`
		// SimulatedRounds is the number of rounds a simulation plays
		SimulatedRounds int `env:"GAME_SIMULATED_ROUNDS" env-default:"100" yaml:"simulatedRounds"`
		// Seed seeds the random source; zero picks a random seed
		Seed int64 `env:"GAME_SEED" env-default:"0" yaml:"seed"`
	} `yaml:"game"`

	Prompt struct {
		// MaxAttempts is the number of rejected answers tolerated per question
		MaxAttempts int `env:"PROMPT_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
	} `yaml:"prompt"`

	Output struct {
		// NarrateRounds prints every step of every round
		NarrateRounds bool `env:"OUTPUT_NARRATE_ROUNDS" env-default:"true" yaml:"narrateRounds"`
		// ProgressEvery prints running totals every N rounds, 0 disables them
		ProgressEvery uint `env:"OUTPUT_PROGRESS_EVERY" env-default:"1" yaml:"progressEvery"`
	} `yaml:"output"`

	Metrics struct {
		// Enabled dumps Prometheus metrics to stdout after a run
		Enabled bool `env:"METRICS_ENABLED" env-default:"false" yaml:"enabled"`
	} `yaml:"metrics"`
}

// Load reads the yaml config file at configPath, then applies environment
// variables and defaults. A missing file is not an error: environment
// variables and defaults are used alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			configPath = ""
		}
	}

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no game can be played with.
func (c *Config) Validate() error {
	switch {
	case c.Game.Doors < domain.MinDoors:
		return serrors.With(serrors.ErrInvalidConfiguration,
			"game.doors must be at least %d, got %d", domain.MinDoors, c.Game.Doors)
	case c.Game.Rounds < 0:
		return serrors.With(serrors.ErrInvalidConfiguration,
			"game.rounds must not be negative, got %d", c.Game.Rounds)
	case c.Game.SimulatedRounds < 0:
		return serrors.With(serrors.ErrInvalidConfiguration,
			"game.simulatedRounds must not be negative, got %d", c.Game.SimulatedRounds)
	case c.Prompt.MaxAttempts < 1:
		return serrors.With(serrors.ErrInvalidConfiguration,
			"prompt.maxAttempts must be positive, got %d", c.Prompt.MaxAttempts)
	default:
		return nil
	}
}
