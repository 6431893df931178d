package harness

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlcheck.yaml"

type LoggingConfig struct {
	Directory string            `yaml:"directory"`
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Console   bool              `yaml:"console"`
	Levels    map[string]string `yaml:"levels"`
}

type FuzzConfig struct {
	Seed        uint64  `yaml:"seed"`
	Ops         int     `yaml:"ops"`
	KeySpace    int     `yaml:"key_space"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	Rounds      int     `yaml:"rounds"`
}

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Fuzz    FuzzConfig    `yaml:"fuzz"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Directory: filepath.Join(os.TempDir(), "avlcheck"),
			File:      "avlcheck.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
		Fuzz: FuzzConfig{
			Seed:        1,
			Ops:         10000,
			KeySpace:    1000,
			RemoveRatio: 0.4,
			Rounds:      10,
		},
	}
}

// DefaultConfigPath is the per-user configuration file.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads path over the defaults.  An empty path means the
// per-user file; a missing per-user file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Logging.File == "" {
		return fmt.Errorf("%w: logging file is required", ErrInvalidParameter)
	}
	if c.Logging.Size <= 0 || c.Logging.Count <= 0 {
		return fmt.Errorf("%w: logging size and count must be positive", ErrInvalidParameter)
	}
	return c.Fuzz.Validate()
}

func (f FuzzConfig) Validate() error {
	if f.Ops < 0 {
		return fmt.Errorf("%w: fuzz ops: %d", ErrInvalidParameter, f.Ops)
	}
	if f.KeySpace <= 0 {
		return fmt.Errorf("%w: fuzz key_space: %d", ErrInvalidParameter, f.KeySpace)
	}
	if f.RemoveRatio < 0 || f.RemoveRatio > 1 {
		return fmt.Errorf("%w: fuzz remove_ratio: %v", ErrInvalidParameter, f.RemoveRatio)
	}
	if f.Rounds <= 0 {
		return fmt.Errorf("%w: fuzz rounds: %d", ErrInvalidParameter, f.Rounds)
	}
	return nil
}
