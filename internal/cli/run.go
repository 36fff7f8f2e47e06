package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/arrayproc/internal/i18n"
	"github.com/roach88/arrayproc/internal/prompt"
	"github.com/roach88/arrayproc/internal/sequence"
	"github.com/roach88/arrayproc/internal/session"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	MaxAttempts int
	Seed        int64

	// IDs generates run IDs. If nil, defaults to UUIDv7Generator.
	IDs session.RunIDGenerator
}

// NewRunCommand creates the interactive run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(rootOpts, nil)
}

func newRunCommand(rootOpts *RootOptions, ids session.RunIDGenerator) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts, IDs: ids}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process an array entered on the console",
		Long: `Ask for the array size, the divisor k and the fill mode, fill the
array randomly or element by element, then print the array, the product of
its even elements, the remainder-2 check and the processed array.

Invalid answers are asked again. With --max-attempts the question is given
up after that many invalid answers.

Example:
  arrayproc run
  arrayproc run --lang ru
  printf '4\n3\n0\n1\n2\n3\n4\n' | arrayproc run --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxAttempts, "max-attempts", 0, "give up a question after N invalid answers (0 = never, overrides config)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for random fill (0 = from config or random)")

	guardCommandLine(cmd, rootOpts)
	return cmd
}

func runSession(opts *RunOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		f := newFormatter(opts.RootOptions, cmd, "en")
		_ = f.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.MaxAttempts < 0 {
		f := newFormatter(opts.RootOptions, cmd, cfg.Lang)
		_ = f.Error(ErrCodeInvalidArgs, "--max-attempts must not be negative", nil)
		return NewExitError(ExitCommandError, "invalid --max-attempts")
	}
	if opts.MaxAttempts > 0 {
		cfg.MaxAttempts = opts.MaxAttempts
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	formatter := newFormatter(opts.RootOptions, cmd, cfg.Lang)
	s := session.New(session.Options{
		In:          cmd.InOrStdin(),
		Out:         formatter.promptWriter(),
		Printer:     formatter.Printer,
		MaxAttempts: cfg.MaxAttempts,
		MaxSize:     cfg.MaxSize,
		Rand:        session.NewRand(cfg.Seed),
		IDs:         opts.IDs,
	})

	slog.Debug("session starting", "lang", cfg.Lang, "max_attempts", cfg.MaxAttempts, "max_size", cfg.MaxSize)
	report, err := s.Run()
	if err != nil {
		return reportRunError(formatter, err)
	}

	formatter.TraceID = report.RunID
	formatter.VerboseLog("run %s processed %d element(s)", report.RunID, report.Size)
	return formatter.Success(report)
}

// reportRunError classifies a session error, reports it and converts it to
// an ExitError.
func reportRunError(f *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, sequence.ErrAllocation):
		_ = f.Error(ErrCodeAllocation, f.Printer.Sprintf(i18n.ErrAllocation)+": "+err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to allocate array", err)
	case errors.Is(err, sequence.ErrEmpty), errors.Is(err, sequence.ErrInvalidRange):
		_ = f.Error(ErrCodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	case errors.Is(err, prompt.ErrInputClosed), errors.Is(err, prompt.ErrTooManyAttempts):
		_ = f.Error(ErrCodeInputExhausted, err.Error(), nil)
		return WrapExitError(ExitFailure, "no valid input", err)
	default:
		_ = f.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "run failed", err)
	}
}
