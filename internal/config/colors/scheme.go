package colors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Keys lists the mapping keys of a ColorScheme in display order
var Keys = []string{"background", "foreground"}

var (
	// ErrMissingKey is returned when an imported scheme lacks a required key
	ErrMissingKey = errors.New("missing color key")

	// ErrInvalidValue is returned when an imported key is not a string
	ErrInvalidValue = errors.New("invalid color value")

	// ErrMalformed is returned when scheme data is not valid JSON
	ErrMalformed = errors.New("malformed color scheme")
)

// ColorScheme holds a background and foreground color
type ColorScheme struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
}

// New returns a scheme holding the given colors.
// Values are stored as given; no format validation is done.
func New(background, foreground string) ColorScheme {
	return ColorScheme{
		Background: background,
		Foreground: foreground,
	}
}

// ToMap returns a fresh key-to-value view of the scheme
func (c ColorScheme) ToMap() map[string]string {
	return map[string]string{
		"background": c.Background,
		"foreground": c.Foreground,
	}
}

// Get returns the color stored under key
func (c ColorScheme) Get(key string) (string, bool) {
	switch key {
	case "background":
		return c.Background, true
	case "foreground":
		return c.Foreground, true
	default:
		return "", false
	}
}

// ToJSON encodes the scheme the way the export command writes it
func (c ColorScheme) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// FromMap builds a scheme from decoded JSON.
// Every key in Keys must be present and hold a string; other keys are ignored.
func FromMap(data map[string]any) (ColorScheme, error) {
	values := make(map[string]string, len(Keys))
	for _, key := range Keys {
		raw, ok := data[key]
		if !ok {
			return ColorScheme{}, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
		s, ok := raw.(string)
		if !ok {
			return ColorScheme{}, fmt.Errorf("%w: %s is %T, want string", ErrInvalidValue, key, raw)
		}
		values[key] = s
	}
	return New(values["background"], values["foreground"]), nil
}

// ParseJSON decodes and validates a scheme exported as JSON
func ParseJSON(data []byte) (ColorScheme, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ColorScheme{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return ColorScheme{}, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	return FromMap(raw)
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "light":
		return Light()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// IsPreset reports whether name is a known preset
func IsPreset(name string) bool {
	for _, p := range PresetNames() {
		if p == name {
			return true
		}
	}
	return false
}

// PresetNames lists the built-in presets
func PresetNames() []string {
	return []string{"default", "monochrome", "light"}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults(preset string) {
	base := GetPreset(preset)

	if c.Background == "" {
		c.Background = base.Background
	}
	if c.Foreground == "" {
		c.Foreground = base.Foreground
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.Foreground != "" {
		c.Foreground = other.Foreground
	}
}
