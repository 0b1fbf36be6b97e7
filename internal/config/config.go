// Package config holds the settings of the solver bot.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the bot configuration, usually read from a YAML file.
type Config struct {
	WordLength  int           `yaml:"word_length"`
	WordsFile   string        `yaml:"words_file"`
	RobotFile   string        `yaml:"robot_file"`
	WebhookFile string        `yaml:"webhook_file"`
	ManifestURL string        `yaml:"manifest_url"`
	Seed        uint64        `yaml:"seed"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Concurrency int           `yaml:"concurrency"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given. The file names match the bot's working
// directory layout.
func Default() Config {
	return Config{
		WordLength:  5,
		WordsFile:   "words",
		RobotFile:   "robot",
		WebhookFile: "webhook",
		HTTPTimeout: 30 * time.Second,
		Concurrency: 1,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error when path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.WordLength <= 0 {
		errs = append(errs, fmt.Errorf("word_length must be positive, got %d", c.WordLength))
	}
	if c.WordsFile == "" {
		errs = append(errs, errors.New("words_file is required"))
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, fmt.Errorf("http_timeout must not be negative, got %s", c.HTTPTimeout))
	}
	return errors.Join(errs...)
}

// ReadLines returns the trimmed, non-empty lines of path.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
