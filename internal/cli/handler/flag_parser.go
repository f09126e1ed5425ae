package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlc-dev/chromatic/internal/cli"
	"github.com/xlc-dev/chromatic/internal/config/colors"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParsePreset extracts the --preset flag; ok is false when it was not given
func (p *FlagParser) ParsePreset() (preset string, ok bool, err error) {
	flag := p.cmd.Flags().Lookup("preset")
	if flag == nil || !flag.Changed {
		return "", false, nil
	}
	preset = strings.ToLower(strings.TrimSpace(flag.Value.String()))
	if !colors.IsPreset(preset) {
		return "", false, &cli.CommandError{
			Code:       cli.ExitUsage,
			Kind:       "UNKNOWN_PRESET",
			Message:    fmt.Sprintf("unknown preset %q", preset),
			Suggestion: "Available presets: " + strings.Join(colors.PresetNames(), ", "),
		}
	}
	return preset, true, nil
}

// ParseColorOverride extracts a color flag such as --background.
// Any text is accepted, including the empty string; ok is false when the flag was not given.
func (p *FlagParser) ParseColorOverride(flagName string) (value string, ok bool) {
	flag := p.cmd.Flags().Lookup(flagName)
	if flag == nil || !flag.Changed {
		return "", false
	}
	return flag.Value.String(), true
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ResolveScheme picks the scheme a command acts on.
// A scheme file argument wins, then --preset, --background and --foreground over the configured scheme.
func (p *FlagParser) ResolveScheme(configured colors.ColorScheme, args []string) (colors.ColorScheme, error) {
	if len(args) > 0 {
		slog.Debug("reading scheme", "source", args[0])
		scheme, err := cli.ReadScheme(args[0], p.cmd.InOrStdin())
		if err != nil {
			p.suggestCommand(args[0], err)
		}
		return scheme, err
	}

	scheme := configured

	preset, ok, err := p.ParsePreset()
	if err != nil {
		return colors.ColorScheme{}, err
	}
	if ok {
		scheme = colors.GetPreset(preset)
	}

	if bg, ok := p.ParseColorOverride("background"); ok {
		scheme.Background = bg
	}
	if fg, ok := p.ParseColorOverride("foreground"); ok {
		scheme.Foreground = fg
	}

	return scheme, nil
}

// suggestCommand points a missing scheme file on the root command at a subcommand with a similar name
func (p *FlagParser) suggestCommand(source string, err error) {
	var cmdErr *cli.CommandError
	if p.cmd.HasParent() || !errors.As(err, &cmdErr) || cmdErr.Code != cli.ExitNotFound {
		return
	}
	names := p.cmd.SuggestionsFor(source)
	if len(names) == 0 {
		return
	}
	cmdErr.Suggestion = fmt.Sprintf("Did you mean: %s %s?", p.cmd.Name(), strings.Join(names, ", "))
}
