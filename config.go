package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joro/shawspell/spell"
)

// Environment overrides, checked before the stored preference.
const (
	envDialect = "SHAWSPELL_DIALECT"
	envDictDir = "SHAWSPELL_DIR"
)

// Config is the stored user preference file.
type Config struct {
	Dialect string `yaml:"dialect"`
	DictDir string `yaml:"dictdir"`
	Watch   bool   `yaml:"watch"`
}

// FromFile returns a Config parsed from a file.
func FromFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shawspell", "config.yaml")
}

// defaultDictDir is the per-user data directory the dictionary pairs are
// installed under.
func defaultDictDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "shawspell", "spelling")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "spelling"
	}
	return filepath.Join(home, ".local", "share", "shawspell", "spelling")
}

// settings are the fully resolved inputs to the engine load. Resolution
// happens here, once, so the loader itself never consults ambient state.
type settings struct {
	dictDir string
	dialect string
	watch   bool
}

// resolveSettings applies the documented precedence for each value: the
// command-line flag, then the environment override, then the stored
// preference, then the hard-coded default. A missing or unreadable config
// file is not an error; the defaults stand.
func resolveSettings() settings {
	path := cfgPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg := &Config{}
	if path != "" {
		if c, err := FromFile(path); err == nil {
			cfg = c
		} else if !os.IsNotExist(err) {
			logger.Warn("config file ignored", zap.String("path", path), zap.Error(err))
		}
	}

	s := settings{
		dictDir: defaultDictDir(),
		dialect: spell.DefaultDialect,
		watch:   cfg.Watch,
	}
	if cfg.DictDir != "" {
		s.dictDir = cfg.DictDir
	}
	if cfg.Dialect != "" {
		s.dialect = cfg.Dialect
	}
	if v := os.Getenv(envDictDir); v != "" {
		s.dictDir = v
	}
	if v := os.Getenv(envDialect); v != "" {
		s.dialect = v
	}
	if flagDictDir != "" {
		s.dictDir = flagDictDir
	}
	if flagDialect != "" {
		s.dialect = flagDialect
	}
	return s
}

// loadChecker resolves settings and loads the engine once.
func loadChecker() (*spell.Checker, settings) {
	s := resolveSettings()
	c := spell.Load(spell.Options{
		Dir:     s.dictDir,
		Dialect: s.dialect,
		Log:     logger,
	})
	return c, s
}
