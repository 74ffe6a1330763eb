// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"reflect"
	"testing"
)

var errTest = errors.New("boom")

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestScriptPathComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "plain invocation untouched",
			args: []string{"deploy", "prod", "--force"},
			want: []string{"deploy", "prod", "--force"},
		},
		{
			name: "completion marker stripped",
			args: []string{"__complete", "deploy", ""},
			want: []string{"deploy", ""},
		},
		{
			name: "no-description completion marker stripped",
			args: []string{"__completeNoDesc", "deploy", ""},
			want: []string{"deploy", ""},
		},
		{
			name: "empty args",
			args: nil,
			want: nil,
		},
		{
			name: "marker only in first position",
			args: []string{"deploy", "__complete"},
			want: []string{"deploy", "__complete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scriptPathComponents(tt.args)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scriptPathComponents(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	t.Run("bare exit code", func(t *testing.T) {
		t.Parallel()

		err := &ExitError{Code: 7}
		if got, want := err.Error(), "exit status 7"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if err.Unwrap() != nil {
			t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
		}
	})

	t.Run("wrapped error message wins", func(t *testing.T) {
		t.Parallel()

		inner := &ExitError{Code: 1, Err: errTest}
		if got := inner.Error(); got != errTest.Error() {
			t.Errorf("Error() = %q, want %q", got, errTest.Error())
		}
		if inner.Unwrap() != errTest {
			t.Errorf("Unwrap() = %v, want %v", inner.Unwrap(), errTest)
		}
	})
}
