package cmd

import (
	"errors"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/exit"
)

// exitCodeFor maps an error to the process exit status. API errors carry
// their own code (not-found is distinct); everything else is a general error.
func exitCodeFor(err error) int {
	if err == nil {
		return exit.Success
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.ExitCode
	}
	return exit.GeneralError
}
