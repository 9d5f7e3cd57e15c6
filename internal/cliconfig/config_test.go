package cliconfig

import (
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/boundcheck/internal/domain"
	"github.com/bft-labs/boundcheck/internal/report"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Steps != 5 {
		t.Errorf("Steps = %v, want 5", cfg.Steps)
	}
	if cfg.Format != "table" {
		t.Errorf("Format = %v, want table", cfg.Format)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %v, want auto", cfg.Color)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Parallelism != runtime.NumCPU() {
		t.Errorf("Parallelism = %v, want %v", cfg.Parallelism, runtime.NumCPU())
	}
	if len(cfg.Domains) != 0 || len(cfg.Operations) != 0 {
		t.Errorf("Domains/Operations = %v/%v, want empty (all)", cfg.Domains, cfg.Operations)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid minimal config",
			config: Config{Steps: 5},
		},
		{
			name:    "zero steps",
			config:  Config{Steps: 0},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "steps above cap",
			config:  Config{Steps: MaxSteps + 1},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "max uint64 steps",
			config:  Config{Steps: math.MaxUint64},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:   "steps at cap",
			config: Config{Steps: MaxSteps, Domains: []string{"uint32"}},
		},
		{
			name:    "unknown domain",
			config:  Config{Steps: 5, Domains: []string{"int8", "int128"}},
			wantErr: domain.ErrUnknownDomain,
		},
		{
			name:    "unknown operation",
			config:  Config{Steps: 5, Operations: []string{"divide"}},
			wantErr: domain.ErrUnknownOperation,
		},
		{
			name:    "unknown format",
			config:  Config{Steps: 5, Format: "xml"},
			wantErr: report.ErrUnknownFormat,
		},
		{
			name:    "unknown color",
			config:  Config{Steps: 5, Color: "sometimes"},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown log level",
			config:  Config{Steps: 5, LogLevel: "loud"},
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Normalizes(t *testing.T) {
	c := Config{
		Steps:      7,
		Operations: []string{"ADD", "sub"},
		Format:     "YML",
		Color:      "",
		LogLevel:   "WARN",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c.Operations[0] != "accumulate" || c.Operations[1] != "decumulate" {
		t.Errorf("Operations = %v, want [accumulate decumulate]", c.Operations)
	}
	if c.Format != "yaml" {
		t.Errorf("Format = %v, want yaml", c.Format)
	}
	if c.Color != "auto" {
		t.Errorf("Color = %v, want auto", c.Color)
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", c.LogLevel)
	}
	if c.Parallelism != runtime.NumCPU() {
		t.Errorf("Parallelism = %v, want %v", c.Parallelism, runtime.NumCPU())
	}
	if c.Level() != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", c.Level())
	}
}

func TestConfig_Plan(t *testing.T) {
	c := Config{
		Steps:       9,
		Domains:     []string{"uint8", "byte", "int16"},
		Operations:  []string{"decumulate", "sub"},
		Parallelism: 3,
	}
	plan, err := c.Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(plan.Domains) != 2 || plan.Domains[0].Name() != "int16" || plan.Domains[1].Name() != "uint8" {
		t.Errorf("Plan().Domains = %v, want [int16 uint8]", plan.Domains)
	}
	if len(plan.Operations) != 1 || plan.Operations[0] != domain.OpDecumulate {
		t.Errorf("Plan().Operations = %v, want [decumulate]", plan.Operations)
	}
	if plan.Steps != 9 || plan.Parallelism != 3 {
		t.Errorf("Plan() steps/parallelism = %d/%d, want 9/3", plan.Steps, plan.Parallelism)
	}

	all, err := Config{Steps: 5}.Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(all.Domains) != len(domain.Names()) || len(all.Operations) != 2 {
		t.Errorf("empty selection Plan() = %d domains, %d ops, want all", len(all.Domains), len(all.Operations))
	}
}

func TestConfig_Level_Fallback(t *testing.T) {
	if got := (Config{}).Level(); got != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", got)
	}
	if got := (Config{LogLevel: "nonsense"}).Level(); got != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", got)
	}
}
