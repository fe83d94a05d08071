package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"junqi/game"
	"junqi/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config describes a batch of self-play games.
type Config struct {
	Games     int    `yaml:"games"`
	MaxTurns  int    `yaml:"max_turns"`
	Seed      uint64 `yaml:"seed"`
	OutputDir string `yaml:"output_dir"`
	LogLevel  string `yaml:"log_level"`
	Liveness  string `yaml:"liveness"`
}

func Default() Config {
	return Config{
		Games:     meta.GAMES,
		MaxTurns:  meta.MAX_TURNS,
		Seed:      meta.SEED,
		OutputDir: meta.OUTPUT_DIR,
		LogLevel:  meta.LOG_LEVEL,
		Liveness:  game.LivenessPresence.String(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := game.ParseLiveness(c.Liveness); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Rules returns the game rules selected by the configuration.
func (c Config) Rules() game.Rules {
	liveness, err := game.ParseLiveness(c.Liveness)
	if err != nil {
		return game.StandardRules()
	}
	return game.Rules{Liveness: liveness}
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
