package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/xlc-dev/chromatic/internal/config/colors"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColorPattern.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %q", color)
	}
	return nil
}

// StdinSource is the scheme source name that reads from standard input
const StdinSource = "-"

// ReadScheme loads an exported scheme from a JSON file, or from stdin when source is "-"
func ReadScheme(source string, stdin io.Reader) (colors.ColorScheme, error) {
	var (
		data []byte
		err  error
	)
	if source == StdinSource {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return colors.ColorScheme{}, &CommandError{
				Code:       ExitNotFound,
				Kind:       "FILE_NOT_FOUND",
				Message:    fmt.Sprintf("color scheme file %s not found", source),
				Suggestion: "Export one with: chromatic export --output colorscheme.json",
				Err:        err,
			}
		}
		return colors.ColorScheme{}, fmt.Errorf("failed to read color scheme %s: %w", source, err)
	}

	scheme, err := colors.ParseJSON(data)
	if err != nil {
		return colors.ColorScheme{}, &CommandError{
			Code:       ExitDataErr,
			Kind:       "INVALID_SCHEME",
			Message:    err.Error(),
			Suggestion: "The file must be a JSON object with string \"background\" and \"foreground\" keys",
			Err:        err,
		}
	}
	return scheme, nil
}

// CommandError carries the exit code and user-facing message for a failed command
type CommandError struct {
	Code       int
	Kind       string
	Message    string
	Suggestion string
	Err        error

	// Details is attached to the JSON error envelope
	Details any

	// Reported marks errors whose details were already written by the command
	Reported bool
}

func (e *CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError wraps err as an incorrect-usage failure
func UsageError(err error) error {
	return &CommandError{Code: ExitUsage, Kind: "USAGE", Message: err.Error(), Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// Report writes err through the formatter unless the command already did
func Report(f *OutputFormatter, err error) {
	if err == nil {
		return
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		_ = f.Error("ERROR", err.Error())
		return
	}
	if cmdErr.Reported {
		return
	}
	kind := cmdErr.Kind
	if kind == "" {
		kind = "ERROR"
	}
	_ = f.ErrorWithDetails(kind, cmdErr.Error(), cmdErr.Suggestion, cmdErr.Details)
}
