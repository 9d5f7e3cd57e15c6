package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config.
type FileConfig struct {
	Steps       uint64   `toml:"steps"`
	Domains     []string `toml:"domains"`
	Operations  []string `toml:"operations"`
	Parallelism int      `toml:"parallelism"`
	Format      string   `toml:"format"`
	Color       string   `toml:"color"`
	LogLevel    string   `toml:"log_level"`
	Watch       *bool    `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.boundcheck/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".boundcheck", "config.toml")
	}
	return ""
}

// ResolveConfigPath picks the config file: the --config flag, then
// BOUNDCHECK_CONFIG, then the default path.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("BOUNDCHECK_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setUint64("steps", fc.Steps, &cfg.Steps)
	s.setStrings("domains", fc.Domains, &cfg.Domains)
	s.setStrings("operations", fc.Operations, &cfg.Operations)
	s.setInt("parallelism", fc.Parallelism, &cfg.Parallelism)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("color", fc.Color, &cfg.Color)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
