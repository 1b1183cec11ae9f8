package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	InputText = "text"
	InputHTML = "html"

	OrderKey   = "key"
	OrderCount = "count"
	OrderNone  = "none"
)

type Config struct {
	Log       Log             `yaml:"log"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	WordCount WordCountConfig `yaml:"wordcount"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type InputConfig struct {
	Format string `yaml:"format" env:"INPUT_FORMAT" env-default:"text"`
}

type OutputConfig struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"text"`
	Top    int    `yaml:"top" env:"OUTPUT_TOP" env-default:"0"`
	Order  string `yaml:"order" env:"OUTPUT_ORDER" env-default:"key"`
}

type WordCountConfig struct {
	Normalize bool `yaml:"normalize" env:"WORDCOUNT_NORMALIZE" env-default:"false"`
}

// ReadConfig loads filename, or the file named by CONFIG_FILE when filename
// is empty (config.yaml by default). Without that file the config comes from
// the environment and defaults.
func ReadConfig(filename string) (*Config, error) {
	if filename == "" {
		filename = getenv("CONFIG_FILE", "config.yaml")
	}
	var cfg Config

	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %v", err)
		}
		log.Debug("config file not found, using environment", "file", filename)
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(filename, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", filename, err)
	}

	log.Debug("read config", "config", cfg)
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Input.Format {
	case InputText, InputHTML:
	default:
		return fmt.Errorf("unsupported input format %q", c.Input.Format)
	}
	switch c.Output.Order {
	case OrderKey, OrderCount, OrderNone:
	default:
		return fmt.Errorf("unsupported output order %q", c.Output.Order)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("output top must not be negative, got %d", c.Output.Top)
	}
	return nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
