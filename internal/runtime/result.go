// SPDX-License-Identifier: MPL-2.0

package runtime

// Result is the outcome of running a script.
type Result struct {
	// ExitCode is the code the parent process should exit with.
	ExitCode int
	// Error is set for infrastructure failures (spawn errors), never for
	// a script that ran and exited non-zero.
	Error error
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code int) *Result {
	return &Result{ExitCode: code}
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code int, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}
