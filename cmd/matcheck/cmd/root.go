// SPDX-License-Identifier: MIT

// Package cmd implements the matcheck command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/lvlinalg/calc"
	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/internal/config"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/spf13/cobra"
)

// ErrMismatch is returned when at least one trial disagreed.
var ErrMismatch = errors.New("matcheck: algorithms disagree")

// options are the persistent flags; zero values leave the config untouched.
type options struct {
	cfgFile string
	order   int
	trials  int
	seed    int64
	calc    string
	verbose bool
}

// NewRootCmd builds a fresh command tree (tests get isolated flag state).
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "matcheck",
		Short: "Randomized cross-checks for the lvlinalg matrix algorithms",
		Long: `matcheck draws seeded random integer-valued matrices and cross-checks
the linear-algebra kernels:

  det      - DeterminantLUP against DeterminantPermutations
  inverse  - A · InverseLUP(A) against the identity

Strategies: float64 (epsilon comparison), bigrat (exact); det also
accepts int64 and bigint (fraction-free elimination keeps them exact).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "TOML config file (default: built-in defaults)")
	pf.IntVar(&opts.order, "order", 0, "matrix order N")
	pf.IntVar(&opts.trials, "trials", 0, "number of random matrices")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed")
	pf.StringVar(&opts.calc, "calc", "", "strategy: float64, bigrat, int64 or bigint")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print every failing matrix")

	root.AddCommand(newDetCmd(opts), newInverseCmd(opts))

	return root
}

// Execute runs the command tree, printing errors to stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}

	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// resolve merges the config file (or defaults) with explicit flags and validates.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Check.Order = o.order
	}
	if flags.Changed("trials") {
		cfg.Check.Trials = o.trials
	}
	if flags.Changed("seed") {
		cfg.Check.Seed = o.seed
	}
	if flags.Changed("calc") {
		cfg.Check.Calc = o.calc
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runner is the strategy-independent shape of check.Determinants and check.Inverses.
type runner func(ctx context.Context, cfg *config.Config) (check.Report, error)

// strategies holds one instantiation per supported calculator; a nil entry means
// the command does not support that strategy.
type strategies struct {
	f64    func(context.Context, *numeric.Field[float64], check.Params) (check.Report, error)
	rat    func(context.Context, *numeric.Field[*big.Rat], check.Params) (check.Report, error)
	i64    func(context.Context, *numeric.Field[int64], check.Params) (check.Report, error)
	bigInt func(context.Context, *numeric.Field[*big.Int], check.Params) (check.Report, error)
}

// dispatch picks the instantiation at run time from cfg.Check.Calc.
func dispatch(s strategies) runner {
	return func(ctx context.Context, cfg *config.Config) (check.Report, error) {
		p := check.Params{
			Order:  cfg.Check.Order,
			Trials: cfg.Check.Trials,
			Seed:   cfg.Check.Seed,
			Low:    cfg.Check.Low,
			High:   cfg.Check.High,

			MaxTries: cfg.Check.MaxTries,
		}
		switch {
		case cfg.Check.Calc == config.CalcFloat64 && s.f64 != nil:
			f := numeric.NewField[float64](calc.NewFloat64(calc.WithEpsilon(cfg.Check.Epsilon)))
			return s.f64(ctx, f, p)
		case cfg.Check.Calc == config.CalcBigRat && s.rat != nil:
			return s.rat(ctx, numeric.NewField[*big.Rat](calc.BigRat{}), p)
		case cfg.Check.Calc == config.CalcInt64 && s.i64 != nil:
			return s.i64(ctx, numeric.NewField[int64](calc.Int64{}), p)
		case cfg.Check.Calc == config.CalcBigInt && s.bigInt != nil:
			return s.bigInt(ctx, numeric.NewField[*big.Int](calc.BigInt{}), p)
		}

		return check.Report{}, fmt.Errorf("calc %q is not supported here: %w", cfg.Check.Calc, config.ErrInvalidConfig)
	}
}

// execute runs r under the configured timeout and prints the report.
func execute(cmd *cobra.Command, opts *options, name string, cfg *config.Config, r runner) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Check.Timeout.Duration)
	defer cancel()

	rep, err := r(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: calc=%s order=%d seed=%d trials=%d skipped=%d failures=%d\n",
		name, cfg.Check.Calc, cfg.Check.Order, cfg.Check.Seed, rep.Trials, rep.Skipped, len(rep.Failures))
	for _, f := range rep.Failures {
		fmt.Fprintf(out, "  trial %d: %s\n", f.Trial, f.Detail)
		if opts.verbose {
			fmt.Fprint(out, f.Matrix)
		}
	}
	if !rep.OK() {
		return fmt.Errorf("%s: %d of %d trials: %w", name, len(rep.Failures), rep.Trials, ErrMismatch)
	}

	return nil
}
