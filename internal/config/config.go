package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/oliverbestmann/anyanimal/zoo"
)

type Style string

const (
	StyleAuto  Style = "auto"
	StylePlain Style = "plain"
	StyleColor Style = "color"
)

type Config struct {
	// Roster lists the kinds of animals in the order they join the roster.
	Roster []string `yaml:"roster" env:"ZOO_ROSTER" envSeparator:","`

	LogLevel string `yaml:"log_level" env:"ZOO_LOG_LEVEL"`
	Style    Style  `yaml:"style" env:"ZOO_STYLE"`
}

// Default returns the roster of the classic zoo demo.
func Default() Config {
	return Config{
		Roster:   []string{string(zoo.KindLion), string(zoo.KindZebra), string(zoo.KindElephant)},
		LogLevel: "info",
		Style:    StyleAuto,
	}
}

// Load builds the configuration from the defaults, the yaml file at path
// and the environment, in that order. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %q: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Style {
	case StyleAuto, StylePlain, StyleColor:
	default:
		return fmt.Errorf("invalid style %q", c.Style)
	}

	_, err := c.Kinds()
	return err
}

// Kinds parses the configured roster.
func (c Config) Kinds() ([]zoo.Kind, error) {
	kinds := make([]zoo.Kind, 0, len(c.Roster))

	for _, value := range c.Roster {
		kind, err := zoo.ParseKind(value)
		if err != nil {
			return nil, fmt.Errorf("roster: %w", err)
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}
