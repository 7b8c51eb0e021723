package output

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Filter post-processes rendered JSON with a user-supplied expression.
type Filter interface {
	// Apply runs expr against jsonText and returns the filter's raw output.
	Apply(jsonText []byte, expr string) ([]byte, error)
}

// ErrFilterNotFound means the jq binary is missing from PATH. The operation
// must not proceed as though filtering were skipped.
var ErrFilterNotFound = errors.New("`jq` is required for --jq but was not found in PATH")

// FilterError carries the diagnostic text jq printed before exiting non-zero.
type FilterError struct {
	Stderr string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("jq failed: %s", e.Stderr)
}

// execFilter shells out to the system jq binary, feeding it the JSON document
// on stdin and the expression as its sole argument.
type execFilter struct{}

func (execFilter) Apply(jsonText []byte, expr string) ([]byte, error) {
	if _, err := exec.LookPath("jq"); err != nil {
		return nil, ErrFilterNotFound
	}

	cmd := exec.Command("jq", expr)
	cmd.Stdin = bytes.NewReader(jsonText)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &FilterError{Stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.Bytes(), nil
}
