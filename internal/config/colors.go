package config

import "github.com/xlc-dev/chromatic/internal/config/colors"

// ColorScheme is re-exported so callers holding a Config need not import colors
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return colors.Default()
}
