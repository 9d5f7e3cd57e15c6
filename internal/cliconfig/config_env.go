package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BOUNDCHECK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setUint64FromString("steps", os.Getenv("BOUNDCHECK_STEPS"), &cfg.Steps); err != nil {
		return err
	}
	if err := s.setIntFromString("parallelism", os.Getenv("BOUNDCHECK_PARALLELISM"), &cfg.Parallelism); err != nil {
		return err
	}

	s.setStringsFromString("domains", os.Getenv("BOUNDCHECK_DOMAINS"), &cfg.Domains)
	s.setStringsFromString("operations", os.Getenv("BOUNDCHECK_OPERATIONS"), &cfg.Operations)
	s.setString("format", os.Getenv("BOUNDCHECK_FORMAT"), &cfg.Format)
	s.setString("color", os.Getenv("BOUNDCHECK_COLOR"), &cfg.Color)
	s.setString("log-level", os.Getenv("BOUNDCHECK_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("BOUNDCHECK_WATCH"), &cfg.Watch)

	return nil
}
