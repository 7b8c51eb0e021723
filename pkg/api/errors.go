package api

import (
	"fmt"
	"net/http"

	"github.com/kazuma-desu/lf/pkg/exit"
)

// Error is a failed Langfuse API call. StatusCode is zero when the server
// never responded; ExitCode is the process exit status the failure maps to.
type Error struct {
	Message    string
	StatusCode int
	ExitCode   int
}

func (e *Error) Error() string {
	return e.Message
}

func notFoundError(path string) *Error {
	return &Error{
		Message:    fmt.Sprintf("resource not found: %s", path),
		StatusCode: http.StatusNotFound,
		ExitCode:   exit.NotFound,
	}
}

func apiError(statusCode int, body string) *Error {
	const maxBodyExcerpt = 512
	if len(body) > maxBodyExcerpt {
		body = body[:maxBodyExcerpt] + "..."
	}
	return &Error{
		Message:    fmt.Sprintf("API error %d: %s", statusCode, body),
		StatusCode: statusCode,
		ExitCode:   exit.GeneralError,
	}
}

func connectionError(err error) *Error {
	return &Error{
		Message:  fmt.Sprintf("connection error: %v", err),
		ExitCode: exit.GeneralError,
	}
}
