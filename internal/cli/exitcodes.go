package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O errors, config errors, or any failure that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown presets, too many arguments, bad flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: A scheme file path that does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input or a scheme missing required keys.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Colors that fail the hex check.
	ExitValidation = 5
)
