// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderDocs_PlainWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := renderDocs(&buf); err != nil {
		t.Fatalf("renderDocs() returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"#@description:",
		"#@arg:",
		"#@flag:",
		"CLI_ADDITIONAL_ARGS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("guide missing %q", want)
		}
	}
}
