// Package report renders probe outcomes and domain listings for the CLI.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bft-labs/boundcheck/internal/domain"
)

// ErrUnknownFormat is returned for output formats other than table, json
// and yaml.
var ErrUnknownFormat = errors.New("boundcheck: unknown output format")

// Format selects how a Reporter renders.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ColorMode controls ANSI colouring of table output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode resolves a colour mode name. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: color %q", domain.ErrInvalidConfig, s)
}

// Reporter writes outcomes and domain listings.
type Reporter interface {
	Outcomes(outcomes []domain.Outcome) error
	Domains(infos []domain.Info) error
}

// Options tune a Reporter.
type Options struct {
	Color ColorMode
}

// New returns a Reporter writing to w in the given format.
func New(format Format, w io.Writer, opts Options) (Reporter, error) {
	switch format {
	case FormatTable:
		return newTableReporter(w, useColor(opts.Color, w)), nil
	case FormatJSON:
		return &jsonReporter{w: w}, nil
	case FormatYAML:
		return &yamlReporter{w: w}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// useColor decides whether table output gets ANSI colours. In auto mode
// only terminals do.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
