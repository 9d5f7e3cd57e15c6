package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/boundcheck/internal/app"
	"github.com/bft-labs/boundcheck/internal/cliconfig"
	"github.com/bft-labs/boundcheck/internal/domain"
	"github.com/bft-labs/boundcheck/internal/report"
	"github.com/bft-labs/boundcheck/internal/watch"
	"github.com/bft-labs/boundcheck/pkg/bounded"
	"github.com/bft-labs/boundcheck/pkg/log"
)

const longHelp = `Probe bounded accumulate and decumulate across Go's numeric types.

Each probe splits a type's MAX into --steps equal deltas and walks from the
neutral start toward the boundary twice: once with exactly --steps steps and
once with one more. The first run lands on or short of the boundary; the
second shows the operation refusing to cross it.

Configure via file ($HOME/.boundcheck/config.toml), BOUNDCHECK_* env, or flags.`

var exampleUsage = strings.TrimSpace(`
  boundcheck --domains int8,uint8 --steps 5
  boundcheck probe --format json --operations decumulate
  boundcheck accumulate uint8 0 51 6
  boundcheck decumulate int8 -- 0 -1 3
  boundcheck domains --format yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return bounded.Version
}

// cli holds flag state shared by the root command and its subcommands.
type cli struct {
	flags   cliconfig.Config
	cfgPath string
}

func newRootCmd() *cobra.Command {
	c := &cli{flags: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "boundcheck",
		Short:         "Probe overflow and underflow handling of bounded arithmetic",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.probe,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.boundcheck/config.toml)")
	pf.Uint64Var(&c.flags.Steps, "steps", c.flags.Steps, "probe step count; MAX is divided into this many deltas")
	pf.StringSliceVar(&c.flags.Domains, "domains", c.flags.Domains, "domains to probe (default: all)")
	pf.StringSliceVar(&c.flags.Operations, "operations", c.flags.Operations, "operations to probe: accumulate, decumulate (default: both)")
	pf.IntVar(&c.flags.Parallelism, "parallelism", c.flags.Parallelism, "domains probed concurrently")
	pf.StringVar(&c.flags.Format, "format", c.flags.Format, "output format: table, json, yaml")
	pf.StringVar(&c.flags.Color, "color", c.flags.Color, "table colour: auto, always, never")
	pf.StringVar(&c.flags.LogLevel, "log-level", c.flags.LogLevel, "log level: debug, info, warn, error")
	pf.BoolVar(&c.flags.Watch, "watch", c.flags.Watch, "re-run the probe whenever the config file changes")

	root.AddCommand(
		&cobra.Command{
			Use:   "probe",
			Short: "Probe every selected domain and operation (default command)",
			Args:  cobra.NoArgs,
			RunE:  c.probe,
		},
		c.newCallCmd(domain.OpAccumulate, "increment"),
		c.newCallCmd(domain.OpDecumulate, "decrement"),
		&cobra.Command{
			Use:   "domains",
			Short: "List the numeric domains with their kind, width and bounds",
			Args:  cobra.NoArgs,
			RunE:  c.domains,
		},
	)

	return root
}

// loadConfig layers file and env config under the flags the user set,
// then validates. It starts from a fresh copy of the flag values so a
// watch re-run sees edits to the file.
func (c *cli) loadConfig(cmd *cobra.Command) (cliconfig.Config, error) {
	cfg := c.flags
	cfg.Domains = append([]string(nil), c.flags.Domains...)
	cfg.Operations = append([]string(nil), c.flags.Operations...)

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile := cliconfig.ResolveConfigPath(c.cfgPath); cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	c.logger(cmd, cfg).Debug("configuration", log.Any("config", cfg))
	return cfg, nil
}

func (c *cli) logger(cmd *cobra.Command, cfg cliconfig.Config) log.Logger {
	return log.NewConsoleLogger(cmd.ErrOrStderr(), cfg.Level())
}

func (c *cli) reporter(cmd *cobra.Command, cfg cliconfig.Config) (report.Reporter, error) {
	return report.New(report.Format(cfg.Format), cmd.OutOrStdout(), report.Options{
		Color: report.ColorMode(cfg.Color),
	})
}

func (c *cli) probe(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.Watch {
		return c.runProbe(cmd.Context(), cmd, cfg)
	}

	path := cliconfig.ResolveConfigPath(c.cfgPath)
	if path == "" {
		return fmt.Errorf("%w: --watch needs a config file", domain.ErrInvalidConfig)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setting watch = false in the file ends the loop after that run.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := c.logger(cmd, cfg)
	logger.Info("watching config", log.String("path", path), log.Strings("domains", cfg.Domains))

	first := true
	w := watch.New(path, watch.WithLogger(logger))
	return w.Run(ctx, func(ctx context.Context) error {
		next := cfg
		if !first {
			reloaded, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			next = reloaded
		}
		first = false

		if err := c.runProbe(ctx, cmd, next); err != nil {
			return err
		}
		if !next.Watch {
			logger.Info("watch turned off, stopping", log.String("path", path))
			cancel()
		}
		return nil
	})
}

func (c *cli) runProbe(ctx context.Context, cmd *cobra.Command, cfg cliconfig.Config) error {
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	rep, err := c.reporter(cmd, cfg)
	if err != nil {
		return err
	}

	outcomes, err := app.NewRunner(app.WithLogger(c.logger(cmd, cfg))).Run(ctx, plan)
	if err != nil {
		return err
	}
	return rep.Outcomes(outcomes)
}

func (c *cli) newCallCmd(op domain.Operation, deltaName string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <domain> <start> <%s> <steps>", op, deltaName),
		Short: fmt.Sprintf("Run a single bounded %s", op),
		Long: fmt.Sprintf("Run a single bounded %s and report the result.\n\n"+
			"Put negative values after -- so they are not read as flags.", op),
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			steps, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: steps %q", domain.ErrInvalidValue, args[3])
			}
			rep, err := c.reporter(cmd, cfg)
			if err != nil {
				return err
			}

			o, err := app.NewRunner(app.WithLogger(c.logger(cmd, cfg))).Exec(args[0], op, args[1], args[2], steps)
			if err != nil {
				return err
			}
			return rep.Outcomes([]domain.Outcome{o})
		},
	}
}

func (c *cli) domains(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	rep, err := c.reporter(cmd, cfg)
	if err != nil {
		return err
	}

	all := domain.All()
	infos := make([]domain.Info, len(all))
	for i, d := range all {
		infos[i] = d.Info()
	}
	return rep.Domains(infos)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.NewConsoleLogger(os.Stderr, zerolog.InfoLevel).Error("boundcheck", log.Err(err))
		os.Exit(1)
	}
}
