package app

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/boundcheck/internal/domain"
	"github.com/bft-labs/boundcheck/pkg/log"
)

// Plan selects what a probe run exercises.
type Plan struct {
	Domains    []domain.Domain
	Operations []domain.Operation

	// Steps is both the divisor of the probe delta and the number of
	// steps of the first probe. A second probe runs Steps+1.
	Steps uint64

	// Parallelism caps how many domains are probed at once. Zero or
	// negative means unlimited.
	Parallelism int
}

// Validate checks the plan for errors.
func (p Plan) Validate() error {
	if len(p.Domains) == 0 {
		return fmt.Errorf("%w: no domains selected", domain.ErrInvalidConfig)
	}
	if len(p.Operations) == 0 {
		return fmt.Errorf("%w: no operations selected", domain.ErrInvalidConfig)
	}
	for _, op := range p.Operations {
		if !op.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
		}
	}
	if p.Steps == 0 {
		return fmt.Errorf("%w: steps must be positive", domain.ErrInvalidConfig)
	}
	// The second probe runs Steps+1.
	if p.Steps == math.MaxUint64 {
		return fmt.Errorf("%w: steps %d leave no room for the extra step", domain.ErrInvalidConfig, p.Steps)
	}
	for _, d := range p.Domains {
		if p.Steps > d.MaxDivisor() {
			return fmt.Errorf("%w: steps %d exceed %s MAX, the probe delta would be zero",
				domain.ErrInvalidConfig, p.Steps, d.Name())
		}
	}
	return nil
}

// Runner executes probe plans and single calls against the domain table.
type Runner struct {
	logger log.Logger
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{logger: o.logger}
}

// Run probes every domain of the plan at Steps and Steps+1 for each
// operation. Domains are probed concurrently; outcomes come back in plan
// order: domain, then operation, then step count.
func (r *Runner) Run(ctx context.Context, plan Plan) ([]domain.Outcome, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stepCounts := []uint64{plan.Steps, plan.Steps + 1}
	perDomain := len(plan.Operations) * len(stepCounts)
	outcomes := make([]domain.Outcome, len(plan.Domains)*perDomain)

	g, gctx := errgroup.WithContext(ctx)
	if plan.Parallelism > 0 {
		g.SetLimit(plan.Parallelism)
	}

	for i, d := range plan.Domains {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slot := outcomes[i*perDomain : (i+1)*perDomain]
			n := 0
			for _, op := range plan.Operations {
				for _, steps := range stepCounts {
					o, err := d.Probe(domain.ProbeRequest{Operation: op, Divisor: plan.Steps, Steps: steps})
					if err != nil {
						return fmt.Errorf("probe %s %s: %w", d.Name(), op, err)
					}
					r.observe(o)
					slot[n] = o
					n++
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("probe complete",
		log.Int("domains", len(plan.Domains)),
		log.Int("outcomes", len(outcomes)),
		log.Uint64("steps", plan.Steps),
	)
	return outcomes, nil
}

// Exec runs a single operation on the named domain.
func (r *Runner) Exec(name string, op domain.Operation, start, delta string, steps uint64) (domain.Outcome, error) {
	d, err := domain.Lookup(name)
	if err != nil {
		return domain.Outcome{}, err
	}
	o, err := d.Run(op, start, delta, steps)
	if err != nil {
		return domain.Outcome{}, err
	}
	r.observe(o)
	return o, nil
}

// observe logs an outcome. Saturation is a warning so it stands out in
// console output.
func (r *Runner) observe(o domain.Outcome) {
	if !o.Saturated() {
		r.logger.Debug("probe finished",
			log.String("domain", o.Domain),
			log.String("operation", string(o.Operation)),
			log.Uint64("steps", o.Steps),
			log.String("result", o.Result),
			log.String("status", string(o.Status)),
		)
		return
	}
	r.logger.Warn(o.Event(),
		log.String("domain", o.Domain),
		log.String("delta", o.Delta),
		log.String("current", o.HaltedFrom),
		log.Uint64("step", *o.HaltedAt),
		log.Uint64("steps", o.Steps),
		log.String("hint", "consider a wider domain"),
	)
}
