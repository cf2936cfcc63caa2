package config

import (
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"log/slog"
	"os"
)

const (
	// DefaultSeed is used when the config leaves the seed unset, so runs
	// stay reproducible by default.
	DefaultSeed = 12345

	DefaultNumbersPerGame = 6
)

// Config drives the generate command.
type Config struct {
	NoOfGames        int     `toml:"no_of_games"`
	InitialGames     [][]int `toml:"initial_games"`
	Seed             *int64  `toml:"seed"`
	MaxNumber        int     `toml:"max_number"`
	MinDesiredNumber int     `toml:"min_desired_number"`
	NumbersPerGame   int     `toml:"numbers_per_game"`
}

// Load reads and validates a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err = toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.NumbersPerGame == 0 {
		cfg.NumbersPerGame = DefaultNumbersPerGame
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Finish to load config:",
		slog.String("Path", path),
		slog.Int("NoOfGames", cfg.NoOfGames),
		slog.Int("MinDesiredNumber", cfg.MinDesiredNumber),
		slog.Int("MaxNumber", cfg.MaxNumber),
		slog.Int("NumbersPerGame", cfg.NumbersPerGame),
	)
	return cfg, nil
}

func (c *Config) validate() error {
	if c.NoOfGames < 1 {
		return fmt.Errorf("no_of_games must be greater than 0. got %d", c.NoOfGames)
	}

	if c.NumbersPerGame < 3 {
		return fmt.Errorf("numbers_per_game must be at least 3. got %d", c.NumbersPerGame)
	}

	if c.MinDesiredNumber < 1 || c.MaxNumber < c.MinDesiredNumber {
		return fmt.Errorf("invalid number range [%d, %d]", c.MinDesiredNumber, c.MaxNumber)
	}

	if c.MaxNumber-c.MinDesiredNumber+1 < c.NumbersPerGame {
		return fmt.Errorf("range [%d, %d] cannot hold %d distinct numbers",
			c.MinDesiredNumber, c.MaxNumber, c.NumbersPerGame)
	}

	return nil
}

// SeedOrDefault returns the configured seed, or DefaultSeed when unset.
func (c *Config) SeedOrDefault() int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return DefaultSeed
}
