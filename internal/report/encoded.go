package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/boundcheck/internal/domain"
)

type jsonReporter struct {
	w io.Writer
}

func (r *jsonReporter) Outcomes(outcomes []domain.Outcome) error {
	return r.encode(nonNil(outcomes))
}

func (r *jsonReporter) Domains(infos []domain.Info) error {
	return r.encode(nonNil(infos))
}

func (r *jsonReporter) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

type yamlReporter struct {
	w io.Writer
}

func (r *yamlReporter) Outcomes(outcomes []domain.Outcome) error {
	return r.encode(nonNil(outcomes))
}

func (r *yamlReporter) Domains(infos []domain.Info) error {
	return r.encode(nonNil(infos))
}

func (r *yamlReporter) encode(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}
