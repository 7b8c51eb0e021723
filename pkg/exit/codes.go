// Package exit provides standard exit codes for lf commands.
package exit

// Standard exit codes used by lf commands.
const (
	// Success indicates successful execution.
	Success = 0

	// GeneralError indicates a general error occurred (API failure,
	// connection error, jq failure, bad arguments).
	GeneralError = 1

	// NotFound indicates the requested resource does not exist upstream.
	NotFound = 2

	// Cancelled is reserved for interrupted operations.
	Cancelled = 3

	// Pending is reserved for asynchronous operations that have not settled.
	Pending = 8
)

// CodeDescriptions maps exit codes to their descriptions.
var CodeDescriptions = map[int]string{
	Success:      "Success",
	GeneralError: "General error",
	NotFound:     "Resource not found",
	Cancelled:    "Cancelled",
	Pending:      "Pending",
}

// GetDescription returns the description for an exit code.
func GetDescription(code int) string {
	if desc, ok := CodeDescriptions[code]; ok {
		return desc
	}
	return "Unknown error"
}
