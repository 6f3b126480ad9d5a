// Package config reads the levelc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/levelc/logging"
	"github.com/milk9111/levelc/store"
)

// EnvPath names the variable holding the configuration path when none is
// given explicitly.
const EnvPath = "LEVELC_CONFIG"

// DefaultPath is read when neither a path nor EnvPath is set. A missing
// default file is not an error.
const DefaultPath = "levelc.yaml"

type Config struct {
	// Classes is a directory of class files. Empty means the built-in
	// classes.
	Classes string `yaml:"classes"`
	Sources string `yaml:"sources"`
	Output  string `yaml:"output"`

	Store    StoreConfig   `yaml:"store"`
	Compress bool          `yaml:"compress"`
	Locale   string        `yaml:"locale"`
	Catalog  string        `yaml:"catalog"`
	LogLevel string        `yaml:"log_level"`
	Preload  PreloadConfig `yaml:"preload"`
}

type StoreConfig struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

type PreloadConfig struct {
	Ratio float64       `yaml:"ratio"`
	Frame time.Duration `yaml:"frame"`
}

func Default() Config {
	return Config{
		Sources:  "levels",
		Output:   "build",
		Store:    StoreConfig{Kind: store.KindDir, Path: "build"},
		LogLevel: "info",
		Preload:  PreloadConfig{Ratio: 0.5, Frame: time.Second / 60},
	}
}

// Load reads the file at path over the defaults. An empty path falls back
// to EnvPath, then to DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store.Kind {
	case "", store.KindDir, store.KindBadger:
	default:
		return fmt.Errorf("config: unknown store kind %q", c.Store.Kind)
	}
	if c.Preload.Ratio < 0 || c.Preload.Ratio > 1 {
		return fmt.Errorf("config: preload ratio %v out of [0, 1]", c.Preload.Ratio)
	}
	if c.Preload.Frame < 0 {
		return fmt.Errorf("config: negative preload frame %v", c.Preload.Frame)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Logger returns a logger writing to stderr at the configured level.
func (c Config) Logger() *logging.Logger {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = logging.INFO
	}
	return logging.New(os.Stderr, lvl)
}
