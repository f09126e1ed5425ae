package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xlc-dev/chromatic/internal/config/colors"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockStringer struct {
	Text string
}

func (m mockStringer) String() string {
	return "stringer: " + m.Text
}

type mockPlain struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests - JSON Mode
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, result map[string]any)
	}{
		{
			name: "color scheme",
			data: colors.New("#0c0c0c", "#cccccc"),
			validate: func(t *testing.T, result map[string]any) {
				dataMap := result["data"].(map[string]any)
				if dataMap["background"] != "#0c0c0c" {
					t.Errorf("Expected data.background to be '#0c0c0c', got %v", dataMap["background"])
				}
				if dataMap["foreground"] != "#cccccc" {
					t.Errorf("Expected data.foreground to be '#cccccc', got %v", dataMap["foreground"])
				}
			},
		},
		{
			name: "string slice",
			data: []string{"default", "light"},
			validate: func(t *testing.T, result map[string]any) {
				list := result["data"].([]any)
				if len(list) != 2 || list[0] != "default" {
					t.Errorf("Expected data to be [default light], got %v", list)
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]any) {
				if result["data"] != nil {
					t.Errorf("Expected data to be nil, got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(true, false)
			if err := formatter.Success(tt.data); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out.String())
			}
			if !result["success"].(bool) {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result)
		})
	}
}

// ============================================================================
// Success Method Tests - Quiet Mode
// ============================================================================

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "scheme prints values only", data: colors.New("#000000", "#ffffff"), want: "#000000\n#ffffff\n"},
		{name: "empty scheme", data: colors.New("", ""), want: "\n\n"},
		{name: "stringer falls through", data: mockStringer{Text: "x"}, want: "stringer: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, true)
			if err := formatter.Success(tt.data); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Expected output %q, got %q", tt.want, out.String())
			}
		})
	}
}

// ============================================================================
// Success Method Tests - Human-Readable Mode
// ============================================================================

func TestOutputFormatter_Success_Human(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "scheme", data: colors.New("#0c0c0c", "#cccccc"), want: "background: #0c0c0c\nforeground: #cccccc\n"},
		{name: "stringer", data: mockStringer{Text: "hello"}, want: "stringer: hello\n"},
		{name: "string slice", data: []string{"a", "b"}, want: "a\nb\n"},
		{name: "plain struct", data: mockPlain{Name: "n", Value: 1}, want: "{Name:n Value:1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, false)
			if err := formatter.Success(tt.data); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Expected output %q, got %q", tt.want, out.String())
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter, out, errOut := newTestFormatter(true, false)

	if err := formatter.ErrorWithSuggestion("INVALID_SCHEME", "missing key", "add it"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors should go to stdout, stderr got %q", errOut.String())
	}

	var result struct {
		Success bool              `json:"success"`
		Error   map[string]string `json:"error"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if result.Success {
		t.Error("Expected success to be false")
	}
	if result.Error["code"] != "INVALID_SCHEME" || result.Error["message"] != "missing key" || result.Error["suggestion"] != "add it" {
		t.Errorf("Unexpected error payload: %v", result.Error)
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter, out, errOut := newTestFormatter(false, false)

	if err := formatter.Error("ERROR", "boom"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Human errors should go to stderr, stdout got %q", out.String())
	}
	if errOut.String() != "Error: boom\n" {
		t.Errorf("Expected 'Error: boom', got %q", errOut.String())
	}

	errOut.Reset()
	_ = formatter.ErrorWithSuggestion("ERROR", "boom", "try again")
	if !strings.Contains(errOut.String(), "Suggestion: try again") {
		t.Errorf("Expected suggestion line, got %q", errOut.String())
	}
}
