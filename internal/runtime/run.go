// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/k15r/shutl/pkg/annotation"
)

// Options overrides the child's standard streams. Zero values mean the
// parent's own streams, which is the normal case: a script owns the
// terminal while it runs.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o *Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o *Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// Run spawns the script at path with the environment computed from its
// declarations and the invocation, blocks until it exits, and maps the
// outcome onto a Result.
//
// The file is executed directly: its shebang and execute bit decide the
// interpreter. The child inherits the parent environment with the computed
// variables appended (the computed ones win on duplicate names). There is
// deliberately no timeout and no cancellation; an interrupt reaches the
// child through normal process-group delivery.
func Run(path string, meta *annotation.Metadata, inv Invocation, opts Options) *Result {
	env := BuildEnv(meta, inv)

	if inv.Verbose {
		out := opts.stdout()
		for _, v := range env {
			fmt.Fprintf(out, "%s=%s\n", v.Name, v.Value)
		}
		fmt.Fprintln(out, path)
	}

	cmd := exec.Command(path)
	cmd.Env = append(os.Environ(), EnvToSlice(env)...)
	cmd.Stdin = opts.stdin()
	cmd.Stdout = opts.stdout()
	cmd.Stderr = opts.stderr()

	log.Debug("spawning script", "path", path, "vars", len(env))
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			if code < 0 {
				// Terminated by signal rather than exiting.
				code = 1
			}
			return NewExitCodeResult(code)
		}
		return NewErrorResult(1, fmt.Errorf("failed to execute %s: %w", path, err))
	}
	return NewSuccessResult()
}
