package scheme

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
	"github.com/xlc-dev/chromatic/internal/cli/styles"
	"golang.org/x/term"
)

const defaultSample = "The quick brown fox jumps over the lazy dog"

// PreviewCmd returns the preview subcommand
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [colorscheme.json|-]",
		Short: "Render a swatch of the color scheme",
		Long: `Render sample text in the scheme's foreground on its background.

Colors are only drawn when stdout is a terminal; use --plain to force text output.`,
		Args: cli.Args(cobra.MaximumNArgs(1)),
		RunE: handler.Command(handler.HandlerFunc(runPreview)),
	}

	cmd.Flags().String("sample", defaultSample, "Text to draw inside the swatch")
	cmd.Flags().Bool("plain", false, "Never emit color escape sequences")

	return cmd
}

func runPreview(ctx context.Context, args *handler.Arguments) (any, error) {
	scheme, err := args.Scheme()
	if err != nil {
		return nil, err
	}

	if args.CLI.Formatter.JSON {
		return scheme.ToMap(), nil
	}

	sample := args.GetString("sample", defaultSample)
	out := args.GetCmd().OutOrStdout()

	var rendered string
	if args.GetBool("plain") || !isTerminal(out) {
		rendered = styles.RenderPlainPreview(scheme, sample)
	} else {
		styles.Init(scheme)
		rendered = styles.RenderPreview(scheme, sample)
	}

	if _, err := fmt.Fprintln(out, rendered); err != nil {
		return nil, err
	}
	return nil, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
