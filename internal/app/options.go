package app

import "github.com/bft-labs/boundcheck/pkg/log"

// Option configures optional behavior of a Runner.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets the logger used to report saturation and progress.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
