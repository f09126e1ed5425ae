package scheme

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [colorscheme.json|-]",
		Short: "Show the color scheme as key/value pairs",
		Long: `Show every color of the scheme, one "key: value" line each.

Examples:
  chromatic show
  chromatic show colorscheme.json --json
  cat colorscheme.json | chromatic show - --quiet`,
		Args: cli.Args(cobra.MaximumNArgs(1)),
		RunE: handler.Command(handler.HandlerFunc(runShow)),
	}
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	scheme, err := args.Scheme()
	if err != nil {
		return nil, err
	}
	return scheme, nil
}
