package scheme

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
)

// ExportResult reports where an exported scheme was written
type ExportResult struct {
	Path string `json:"path"`
}

func (r ExportResult) String() string {
	return "Exported color scheme to " + r.Path
}

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [colorscheme.json|-]",
		Short: "Export the color scheme as JSON",
		Long: `Export the color scheme in the JSON format the other commands read.

Without --output the JSON is written to stdout.

Examples:
  chromatic export > colorscheme.json
  chromatic export --preset monochrome --output mono.json`,
		Args: cli.Args(cobra.MaximumNArgs(1)),
		RunE: handler.Command(handler.HandlerFunc(runExport)),
	}

	cmd.Flags().StringP("output", "o", "", "Write the JSON to this file instead of stdout")

	return cmd
}

func runExport(ctx context.Context, args *handler.Arguments) (any, error) {
	scheme, err := args.Scheme()
	if err != nil {
		return nil, err
	}

	data, err := scheme.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode color scheme: %w", err)
	}
	data = append(data, '\n')

	output, err := handler.NewFlagParser(args.GetCmd()).ParseStringOptional("output")
	if err != nil {
		return nil, err
	}

	if output == "" {
		if _, err := args.GetCmd().OutOrStdout().Write(data); err != nil {
			return nil, fmt.Errorf("failed to write color scheme: %w", err)
		}
		return nil, nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write color scheme to %s: %w", output, err)
	}
	slog.Info("exported color scheme", "path", output)

	return ExportResult{Path: output}, nil
}
