package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
	"github.com/xlc-dev/chromatic/internal/cli/scheme"
	"github.com/xlc-dev/chromatic/internal/logging"
)

// NewRootCmd builds the chromatic command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chromatic [colorscheme.json|-]",
		Short: "Chromatic - inspect and export terminal color schemes",
		Long: `Chromatic holds a background and foreground color and prints, previews
or exports them.

Run without arguments it prints the background of the configured scheme.
A colorscheme.json argument (or - for stdin) replaces the configured scheme.`,
		Args:          cli.Args(cobra.MaximumNArgs(1)),
		RunE:          handler.Command(scheme.PrintBackground()),
		SilenceErrors: true,
		SilenceUsage:  true,

		SuggestionsMinimumDistance: 2,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("quiet", false, "Minimal output (values only)")
	rootCmd.PersistentFlags().String("preset", "", "Start from a built-in preset instead of the configured scheme")
	rootCmd.PersistentFlags().String("background", "", "Override the background color")
	rootCmd.PersistentFlags().String("foreground", "", "Override the foreground color")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	rootCmd.AddCommand(scheme.ShowCmd())
	rootCmd.AddCommand(scheme.ExportCmd())
	rootCmd.AddCommand(scheme.PreviewCmd())
	rootCmd.AddCommand(scheme.CheckCmd())
	rootCmd.AddCommand(scheme.PresetsCmd())

	return rootCmd
}

// Execute runs chromatic with the process arguments and returns the exit code
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command tree against the given arguments and streams
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer func() { _ = logging.Close() }()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return cli.ExitSuccess
	}

	if executed == nil {
		executed = rootCmd
	}

	cli.Report(cli.FormatterFor(executed), err)
	return cli.ExitCode(err)
}
