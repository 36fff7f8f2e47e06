package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/arrayproc/internal/config"
	"github.com/roach88/arrayproc/internal/i18n"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigPath string
	Lang       string // overrides config lang when set
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the arrayproc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "arrayproc",
		Short: "arrayproc - integer array exercises",
		Long: `Fill an integer array, compute the product of its even elements,
replace odd-indexed elements with the square of their index and check for
positive elements leaving remainder 2 when divided by k.`,
		SilenceErrors: true, // main reports errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return commandLineError(opts, cmd, fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Lang != "" && !slices.Contains(i18n.SupportedLanguages, opts.Lang) {
				return commandLineError(opts, cmd, fmt.Errorf("invalid lang %q: must be one of %v", opts.Lang, i18n.SupportedLanguages))
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "message language (en|ru), overrides config")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))

	return cmd
}

// guardCommandLine makes flag, argument and flag-group errors of cmd
// report through the formatter and exit with ExitCommandError. Cobra
// returns these as plain errors, which would otherwise map to ExitFailure.
func guardCommandLine(cmd *cobra.Command, opts *RootOptions) {
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return commandLineError(opts, c, err)
	})

	args := cmd.Args
	cmd.Args = func(c *cobra.Command, a []string) error {
		if args == nil {
			return nil
		}
		return commandLineError(opts, c, args(c, a))
	}

	// Required flags and flag groups are checked again by cobra after
	// PreRunE; by then they pass.
	cmd.PreRunE = func(c *cobra.Command, a []string) error {
		if err := c.ValidateRequiredFlags(); err != nil {
			return commandLineError(opts, c, err)
		}
		return commandLineError(opts, c, c.ValidateFlagGroups())
	}
}

// commandLineError reports err and converts it to a command error. nil and
// errors that already carry an exit code pass through unchanged.
func commandLineError(opts *RootOptions, cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	_ = newFormatter(opts, cmd, "en").Error(ErrCodeInvalidArgs, err.Error(), nil)
	return WrapExitError(ExitCommandError, "invalid command line", err)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// configureLogging installs the default slog handler. Records below Warn
// are only shown with --verbose so they do not clutter the transcript.
func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Lang != "" {
		cfg.Lang = opts.Lang
	}
	return cfg, nil
}

// newFormatter builds the formatter for a command. In structured formats
// prompts are routed to stderr so stdout stays machine-readable.
func newFormatter(opts *RootOptions, cmd *cobra.Command, lang string) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		Printer:   i18n.NewPrinter(lang),
	}
}

// promptWriter is where interactive questions are written.
func (f *OutputFormatter) promptWriter() io.Writer {
	if f.Structured() {
		return f.GetErrWriter()
	}
	return f.Writer
}
