// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/k15r/shutl/pkg/annotation"
)

// ErrScriptNotFound is the sentinel error wrapped by ScriptNotFoundError.
var ErrScriptNotFound = errors.New("script not found")

type (
	// Discovery resolves command trees against one scripts root. The root
	// is an explicit value so tests can point it at arbitrary temporary
	// directories.
	Discovery struct {
		root string
	}

	// ScriptNotFoundError is returned when FindScript cannot locate a
	// backing file for the given command components.
	ScriptNotFoundError struct {
		Components []string
	}
)

// Error implements the error interface.
func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("no script found for command %q", strings.Join(e.Components, " "))
}

// Unwrap returns ErrScriptNotFound so callers can use errors.Is for
// programmatic detection.
func (e *ScriptNotFoundError) Unwrap() error { return ErrScriptNotFound }

// New creates a Discovery over the given scripts root.
func New(root string) *Discovery {
	return &Discovery{root: root}
}

// Root returns the scripts root this Discovery resolves against.
func (d *Discovery) Root() string { return d.root }

// Build resolves one invocation's worth of command tree. Components are the
// raw argv tokens after the binary name; tokens that match nothing (flag
// tokens, argument values) are skipped until one names a subdirectory or a
// script, so the result is the narrowest tree that can parse the
// invocation:
//
//   - no component matches: the flat listing of the root (groups without
//     grandchildren, leaves with parsed headers)
//   - a component names a subdirectory: a single group whose children are
//     the recursive resolution of the remaining components
//   - a component names a script (by display name or clean name): that
//     single leaf; remaining components are left for the leaf's own argv
func (d *Discovery) Build(components []string) ([]*Node, error) {
	return d.build(d.root, components)
}

func (d *Discovery) build(dir string, components []string) ([]*Node, error) {
	for len(components) > 0 {
		head := components[0]
		components = components[1:]

		if sub, ok := matchSubdir(dir, head); ok {
			log.Debug("component matched directory", "component", head, "dir", sub)
			children, err := d.build(sub, components)
			if err != nil {
				return nil, err
			}
			group := &Node{Name: head, Description: sidecarDescription(sub), Children: children}
			return []*Node{group}, nil
		}

		if path, ok := matchScript(dir, head); ok {
			log.Debug("component matched script", "component", head, "path", path)
			return []*Node{leafNode(head, path)}, nil
		}

		log.Debug("component matched nothing, skipping", "component", head, "dir", dir)
	}
	return d.list(dir)
}

// list produces the flat listing of a directory: every subdirectory as a
// childless group with its sidecar description, every visible file as a
// leaf under its display name.
func (d *Discovery) list(dir string) ([]*Node, error) {
	dirs, files, err := visibleEntries(dir)
	if err != nil {
		return nil, fmt.Errorf("listing scripts in %s: %w", dir, err)
	}
	names := displayNames(dirs, files)

	nodes := make([]*Node, 0, len(dirs)+len(files))
	for _, sub := range dirs {
		nodes = append(nodes, &Node{Name: sub, Description: sidecarDescription(filepath.Join(dir, sub))})
	}
	for i, f := range files {
		nodes = append(nodes, leafNode(names[i], filepath.Join(dir, f)))
	}
	return nodes, nil
}

// matchSubdir reports whether component exactly names a subdirectory.
// Dot-prefixed components never match, at any depth.
func matchSubdir(dir, component string) (string, bool) {
	if component == "" || strings.HasPrefix(component, ".") {
		return "", false
	}
	path := filepath.Join(dir, component)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return path, true
}

// matchScript reports whether component names a visible script in dir. An
// exact filename match is authoritative: its execute bit alone decides, and
// no clean-name probing happens behind it. Otherwise the first file in
// listing order whose clean name equals the component is taken, again with
// its execute bit deciding visibility.
func matchScript(dir, component string) (string, bool) {
	if component == "" || strings.HasPrefix(component, ".") {
		return "", false
	}
	exact := filepath.Join(dir, component)
	if info, err := os.Stat(exact); err == nil && info.Mode().IsRegular() {
		return exact, isExecutable(info)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || CleanName(name) != component {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return path, isExecutable(info)
	}
	return "", false
}

// leafNode parses the script's header into a leaf. A script whose header
// cannot be read still resolves, with an empty interface declaration.
func leafNode(name, path string) *Node {
	meta, err := annotation.Parse(path)
	if err != nil {
		log.Debug("script header unreadable", "path", path, "err", err)
		meta = &annotation.Metadata{}
	}
	return &Node{Name: name, Description: meta.Description, Path: path, Meta: meta}
}

// FindScript locates the backing file for a command path without requiring
// the execute bit, for tooling that edits scripts rather than running them.
// All but the last component are directories under the root; the last is
// tried verbatim, then with each known script extension in order.
func (d *Discovery) FindScript(components []string) (string, error) {
	if len(components) == 0 {
		return "", &ScriptNotFoundError{Components: components}
	}
	dir := d.root
	for _, c := range components[:len(components)-1] {
		dir = filepath.Join(dir, c)
	}
	base := filepath.Join(dir, components[len(components)-1])

	candidates := make([]string, 0, len(scriptExtensions)+1)
	candidates = append(candidates, base)
	for _, ext := range scriptExtensions {
		candidates = append(candidates, base+ext)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", &ScriptNotFoundError{Components: components}
}
