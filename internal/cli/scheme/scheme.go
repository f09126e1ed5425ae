// Package scheme holds the cli commands that read and render a color scheme
// e.g., chromatic show, chromatic export
package scheme

import (
	"context"

	"github.com/xlc-dev/chromatic/internal/cli/handler"
)

// BackgroundLine is the one-line summary printed by the bare chromatic command
type BackgroundLine struct {
	Background string `json:"background"`
}

func (b BackgroundLine) String() string {
	return "Background: " + b.Background
}

// PrintBackground resolves the scheme and reports its background color
func PrintBackground() handler.Handler {
	return handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
		scheme, err := args.Scheme()
		if err != nil {
			return nil, err
		}
		return BackgroundLine{Background: scheme.Background}, nil
	})
}
