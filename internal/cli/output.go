package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xlc-dev/chromatic/internal/config/colors"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		if scheme, ok := data.(colors.ColorScheme); ok {
			m := scheme.ToMap()
			for _, key := range colors.Keys {
				if _, err := fmt.Fprintln(f.stdout(), m[key]); err != nil {
					return err
				}
			}
			return nil
		}
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.ErrorWithDetails(code, message, suggestion, nil)
}

// ErrorWithDetails outputs error information; details are only included in JSON mode
func (f *OutputFormatter) ErrorWithDetails(code string, message string, suggestion string, details any) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		if details != nil {
			errData["details"] = details
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.stderr(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case colors.ColorScheme:
		m := v.ToMap()
		var b strings.Builder
		for _, key := range colors.Keys {
			fmt.Fprintf(&b, "%s: %s\n", key, m[key])
		}
		_, err := io.WriteString(f.stdout(), b.String())
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.stdout(), v.String())
		return err
	case []string:
		_, err := io.WriteString(f.stdout(), strings.Join(v, "\n")+"\n")
		return err
	default:
		_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
		return err
	}
}
