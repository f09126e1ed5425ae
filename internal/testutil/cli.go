package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Isolate points the config, theme file and log locations at fresh temp dirs.
// It returns the directory used as XDG_CONFIG_HOME.
func Isolate(t *testing.T) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHROMATIC_THEME_FILE", "")
	t.Setenv("CHROMATIC_LOG_STDERR", "")

	return configHome
}

// WriteConfig writes config.yaml under the chromatic directory of configHome
func WriteConfig(t *testing.T, configHome, content string) string {
	t.Helper()

	dir := filepath.Join(configHome, "chromatic")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// WriteScheme writes an exported color scheme file into a temp dir
func WriteScheme(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "colorscheme.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scheme: %v", err)
	}
	return path
}
