package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/roach88/arrayproc/internal/session"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Values []int
	K      int
	Random bool
	Size   int
	Min    int
	Max    int
	Seed   int64

	// IDs generates run IDs. If nil, defaults to UUIDv7Generator.
	IDs session.RunIDGenerator
}

// NewEvalCommand creates the non-interactive eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return newEvalCommand(rootOpts, nil)
}

func newEvalCommand(rootOpts *RootOptions, ids session.RunIDGenerator) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts, IDs: ids}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Process an array given on the command line",
		Long: `Process an array without prompting. Either pass the elements with
--values, or request a random array with --random and --size.

The random range defaults to the config file's random.min and random.max
unless --min and --max are given.

Example:
  arrayproc eval --values 1,2,3,4 --k 3
  arrayproc eval --random --size 10 --min -5 --max 5 --k 4 --seed 42
  arrayproc eval --values 5,7,-1 --k 3 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, cmd)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Values, "values", nil, "comma-separated array elements")
	cmd.Flags().IntVar(&opts.K, "k", 0, "divisor for the remainder-2 check (required)")
	cmd.Flags().BoolVar(&opts.Random, "random", false, "fill the array with random numbers")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "array size for --random")
	cmd.Flags().IntVar(&opts.Min, "min", 0, "minimum random value")
	cmd.Flags().IntVar(&opts.Max, "max", 0, "maximum random value")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for --random (0 = from config or random)")
	_ = cmd.MarkFlagRequired("k")
	cmd.MarkFlagsMutuallyExclusive("values", "random")
	cmd.MarkFlagsOneRequired("values", "random")

	guardCommandLine(cmd, rootOpts)
	return cmd
}

func runEval(opts *EvalOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		f := newFormatter(opts.RootOptions, cmd, "en")
		_ = f.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	formatter := newFormatter(opts.RootOptions, cmd, cfg.Lang)

	if err := checkInt32Flags(opts, cmd); err != nil {
		_ = formatter.Error(ErrCodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}

	ids := opts.IDs
	if ids == nil {
		ids = session.UUIDv7Generator{}
	}
	runID := ids.Generate()

	var report *session.Report
	if opts.Random {
		lo, hi := cfg.Random.Min, cfg.Random.Max
		if cmd.Flags().Changed("min") {
			lo = opts.Min
		}
		if cmd.Flags().Changed("max") {
			hi = opts.Max
		}
		seed := cfg.Seed
		if opts.Seed != 0 {
			seed = opts.Seed
		}
		formatter.VerboseLog("random fill: size=%d range=[%d, %d] seed=%d", opts.Size, lo, hi, seed)
		report, err = session.EvaluateRandom(runID, session.NewRand(seed), opts.Size, lo, hi, opts.K, cfg.MaxSize)
	} else {
		report, err = session.Evaluate(runID, opts.Values, opts.K, cfg.MaxSize)
	}
	if err != nil {
		formatter.TraceID = runID
		return reportRunError(formatter, err)
	}

	formatter.TraceID = report.RunID
	return formatter.Success(report)
}

// checkInt32Flags holds element values, bounds and k to the 32-bit range
// the interactive prompt accepts.
func checkInt32Flags(opts *EvalOptions, cmd *cobra.Command) error {
	for i, v := range opts.Values {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("--values[%d] = %d is outside the 32-bit integer range", i, v)
		}
	}
	checks := []struct {
		name string
		v    int
	}{
		{"k", opts.K},
		{"min", opts.Min},
		{"max", opts.Max},
	}
	for _, c := range checks {
		if !cmd.Flags().Changed(c.name) {
			continue
		}
		if c.v < math.MinInt32 || c.v > math.MaxInt32 {
			return fmt.Errorf("--%s = %d is outside the 32-bit integer range", c.name, c.v)
		}
	}
	return nil
}
