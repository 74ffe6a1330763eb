// SPDX-License-Identifier: MPL-2.0

package annotation

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCommentPrefix marks header lines in scripts whose extension has no
// override in commentPrefixes.
const DefaultCommentPrefix = "#@"

// catchAllMarker is the literal NAME that declares the catch-all argument.
const catchAllMarker = "..."

// commentPrefixes overrides the header prefix for comment syntaxes where
// `#` is not a comment leader.
var commentPrefixes = map[string]string{
	".js": "//@",
}

// CommentPrefix returns the header prefix for the given script path, chosen
// by file extension.
func CommentPrefix(path string) string {
	if p, ok := commentPrefixes[filepath.Ext(path)]; ok {
		return p
	}
	return DefaultCommentPrefix
}

// Parse reads the annotation header of the script at path. A script without
// a header parses to an empty Metadata; only I/O failures are errors.
func Parse(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, CommentPrefix(path))
}

// ParseReader parses the annotation header from r using the given comment
// prefix. The header is the run of strictly consecutive prefixed lines at
// the top of the input, after an optional first-line shebang. The first
// unprefixed line ends the header; nothing beyond it is read.
func ParseReader(r io.Reader, prefix string) (*Metadata, error) {
	meta := &Metadata{}
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			if strings.HasPrefix(line, "#!") {
				continue
			}
		}
		if !strings.HasPrefix(line, prefix) {
			break
		}
		parseHeaderLine(meta, strings.TrimSpace(strings.TrimPrefix(line, prefix)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return meta, nil
}

// parseHeaderLine dispatches one prefix-stripped header line. Unrecognized
// directives and malformed declarations are dropped without complaint.
func parseHeaderLine(meta *Metadata, line string) {
	switch {
	case strings.HasPrefix(line, "description:"):
		meta.Description = strings.TrimSpace(strings.TrimPrefix(line, "description:"))
	case strings.HasPrefix(line, "arg:"):
		name, rest, ok := splitDeclaration(strings.TrimPrefix(line, "arg:"))
		if !ok {
			return
		}
		if name == catchAllMarker {
			setCatchAll(meta, strings.TrimSpace(rest))
			return
		}
		meta.Args = append(meta.Args, parseSpec(name, rest, RolePositional, ""))
	case strings.HasPrefix(line, "flag:"):
		name, rest, ok := splitDeclaration(strings.TrimPrefix(line, "flag:"))
		if !ok {
			return
		}
		meta.Args = append(meta.Args, parseSpec(name, rest, RoleFlag, ""))
	case strings.HasPrefix(line, "bool:"):
		// Shorthand for a boolean flag declaration.
		name, rest, ok := splitDeclaration(strings.TrimPrefix(line, "bool:"))
		if !ok {
			return
		}
		meta.Args = append(meta.Args, parseSpec(name, rest, RoleFlag, KindBool))
	}
}

// splitDeclaration cuts `NAME - DESC` on the first " - " separator. Lines
// without the separator are not declarations.
func splitDeclaration(s string) (name, rest string, ok bool) {
	name, rest, ok = strings.Cut(s, " - ")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(name), rest, true
}

// setCatchAll installs the catch-all declaration under its fixed internal
// name. Scripts declare at most one; a repeat replaces the previous one.
// The remainder is taken verbatim as the description, attribute list and
// all: a catch-all carries no attributes.
func setCatchAll(meta *Metadata, desc string) {
	spec := ArgSpec{Name: CatchAllName, Description: desc, Role: RoleCatchAll}
	for i := range meta.Args {
		if meta.Args[i].Role == RoleCatchAll {
			meta.Args[i] = spec
			return
		}
	}
	meta.Args = append(meta.Args, spec)
}

// parseSpec builds an ArgSpec from a declaration remainder, evaluating the
// optional bracketed attribute list. The list is the text between the first
// `[` and the first `]` after it; the stored description is the text before
// the `[`. A `[` without a closing `]` leaves the remainder untouched.
func parseSpec(name, rest string, role Role, kind Kind) ArgSpec {
	spec := ArgSpec{Name: name, Description: strings.TrimSpace(rest), Role: role, Kind: kind}
	open := strings.Index(rest, "[")
	if open < 0 {
		return spec
	}
	closing := strings.Index(rest[open:], "]")
	if closing < 0 {
		return spec
	}
	spec.Description = strings.TrimSpace(rest[:open])
	applyAttributes(&spec, rest[open+1:open+closing])
	return spec
}

// applyAttributes evaluates a comma-separated attribute list left to right.
// A later token overrides an earlier one, which makes the interaction of
// `default:` and a `!marked!` option strictly positional. Unknown tokens
// are ignored.
func applyAttributes(spec *ArgSpec, attrs string) {
	for _, tok := range strings.Split(attrs, ",") {
		tok = strings.TrimSpace(tok)
		key, value, hasValue := strings.Cut(tok, ":")
		if !hasValue {
			switch tok {
			case "required":
				spec.Required = true
			case "bool":
				spec.Kind = KindBool
			case "dir":
				spec.Kind = KindDir
			case "file":
				spec.Kind = KindFile
			case "path":
				spec.Kind = KindPath
			}
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "default":
			spec.Default = value
			spec.HasDefault = true
		case "key":
			spec.CompletionRoot = value
		case "options":
			spec.Options = parseOptions(spec, value)
		}
	}
}

// parseOptions splits a `|`-separated option list. An option wrapped as
// `!X!` is stripped to X and installed as the default.
func parseOptions(spec *ArgSpec, list string) []string {
	values := strings.Split(list, "|")
	opts := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if len(v) >= 2 && strings.HasPrefix(v, "!") && strings.HasSuffix(v, "!") {
			v = v[1 : len(v)-1]
			spec.Default = v
			spec.HasDefault = true
		}
		opts = append(opts, v)
	}
	return opts
}
