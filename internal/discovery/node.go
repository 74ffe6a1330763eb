// SPDX-License-Identifier: MPL-2.0

package discovery

import "github.com/k15r/shutl/pkg/annotation"

// Node is one command in the resolved tree. A group node carries Children
// (possibly empty) and a sidecar description; a leaf node carries the
// backing script path and its parsed header.
type Node struct {
	// Name is the name the command answers to. In a directory listing this
	// is the display name (collision-aware); in a narrowed resolution it is
	// the component as the user typed it.
	Name string
	// Description is the group's sidecar text or the leaf's declared
	// description. May be empty.
	Description string
	// Children holds a group's subcommands. A group produced by a flat
	// listing has none even when its directory is not empty.
	Children []*Node
	// Path is the backing script file. Set only on leaves.
	Path string
	// Meta is the parsed annotation header. Set only on leaves.
	Meta *annotation.Metadata
}

// IsLeaf reports whether the node is backed by a script file.
func (n *Node) IsLeaf() bool { return n.Path != "" }
