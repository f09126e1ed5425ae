package scheme

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/cli/handler"
	"github.com/xlc-dev/chromatic/internal/config/colors"
)

// Problem describes one color that failed the hex check
type Problem struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// CheckReport is the outcome of checking every color of a scheme
type CheckReport struct {
	Valid    bool      `json:"valid"`
	Problems []Problem `json:"problems"`
}

func (r CheckReport) String() string {
	if r.Valid {
		return "All colors are valid #RRGGBB values"
	}
	var b strings.Builder
	for i, p := range r.Problems {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", p.Key, p.Reason)
	}
	return b.String()
}

// CheckCmd returns the check subcommand
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [colorscheme.json|-]",
		Short: "Check that every color is a #RRGGBB hex value",
		Long: `Check the scheme's colors against the #RRGGBB format.

Chromatic stores any text as a color; this command is an optional lint.
Exits with status 5 when a color does not match.`,
		Args: cli.Args(cobra.MaximumNArgs(1)),
		RunE: handler.Command(handler.HandlerFunc(runCheck)),
	}
}

func runCheck(ctx context.Context, args *handler.Arguments) (any, error) {
	scheme, err := args.Scheme()
	if err != nil {
		return nil, err
	}

	report := Check(scheme)
	if report.Valid {
		return report, nil
	}

	failure := &cli.CommandError{
		Code:    cli.ExitValidation,
		Kind:    "INVALID_COLOR",
		Message: fmt.Sprintf("%d color(s) failed the hex check", len(report.Problems)),
	}

	// JSON consumers get the report inside the error envelope
	if args.CLI.Formatter.JSON {
		failure.Details = report
		return nil, failure
	}

	failure.Reported = true
	return report, failure
}

// Check validates every color of scheme in key order
func Check(scheme colors.ColorScheme) CheckReport {
	report := CheckReport{Valid: true, Problems: []Problem{}}
	m := scheme.ToMap()
	for _, key := range colors.Keys {
		if err := cli.ValidateColorHex(m[key]); err != nil {
			report.Valid = false
			report.Problems = append(report.Problems, Problem{
				Key:    key,
				Value:  m[key],
				Reason: err.Error(),
			})
		}
	}
	return report
}
