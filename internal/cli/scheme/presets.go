package scheme

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
	"github.com/xlc-dev/chromatic/internal/config/colors"
)

// PresetsCmd returns the presets subcommand
func PresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cli.Args(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			return colors.PresetNames(), nil
		})),
	}
}
