package cli

import (
	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/config"
	"github.com/xlc-dev/chromatic/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	Config    *config.Config
	Formatter *OutputFormatter
}

// NewCLI loads configuration and sets up logging and output for cmd
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &CommandError{
			Code:       ExitError,
			Kind:       "CONFIG_ERROR",
			Message:    err.Error(),
			Suggestion: "Fix or remove the config file shown above",
			Err:        err,
		}
	}

	// Logging is best effort; the command still runs without a log file
	if err := logging.Init(cfg.LogLevel); err != nil {
		logging.Logger.Debug("logging disabled", "error", err)
	}

	return &CLI{
		Config:    cfg,
		Formatter: FormatterFor(cmd),
	}, nil
}

// FormatterFor builds an output formatter from the --json and --quiet flags of cmd
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Args marks positional-argument errors from v as usage errors
func Args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}
