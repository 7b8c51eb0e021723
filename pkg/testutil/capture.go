// Package testutil provides utilities for testing.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// CaptureStdout captures stdout output from the provided function. It returns
// the captured output and any error returned by f, or an error if f panics
// (the panic is recovered and converted to an error).
func CaptureStdout(f func() error) (string, error) {
	return capture(&os.Stdout, f)
}

// CaptureStderr captures stderr output from the provided function.
func CaptureStderr(f func() error) (string, error) {
	return capture(&os.Stderr, f)
}

// CaptureStdoutFunc captures stdout output from a function that doesn't
// return an error.
func CaptureStdoutFunc(f func()) (string, error) {
	return CaptureStdout(func() error {
		f()
		return nil
	})
}

func capture(target **os.File, f func() error) (string, error) {
	old := *target
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		return "", fmt.Errorf("capture: failed to create pipe: %w", pipeErr)
	}

	// Read from the pipe in a goroutine to avoid blocking on large outputs.
	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outCh <- buf.String()
	}()

	*target = w

	var fErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				fErr = fmt.Errorf("capture: f() panicked: %v", rec)
			}
		}()
		fErr = f()
	}()

	_ = w.Close()
	*target = old

	return <-outCh, fErr
}
