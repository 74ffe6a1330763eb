// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// scriptExtensions are the extensions stripped when deriving a file's clean
// command name. Exactly one trailing extension is removed; anything else
// stays part of the name.
var scriptExtensions = []string{".sh", ".py", ".rb", ".js"}

// sidecarFile holds a directory's group description. Being dot-prefixed it
// is never a command itself.
const sidecarFile = ".shutl"

// CleanName strips one trailing known script extension from a filename.
func CleanName(filename string) string {
	ext := filepath.Ext(filename)
	for _, known := range scriptExtensions {
		if ext == known {
			return strings.TrimSuffix(filename, ext)
		}
	}
	return filename
}

// visibleEntries partitions a directory listing into subdirectory names and
// visible script file names, both in listing order. Dot-prefixed entries
// are dropped; files must be regular and carry an execute bit. Stat follows
// symlinks, so a link to a directory lists as a group and a link to an
// executable lists as a leaf.
func visibleEntries(dir string) (dirs, files []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		switch {
		case info.IsDir():
			dirs = append(dirs, name)
		case isExecutable(info):
			files = append(files, name)
		}
	}
	return dirs, files, nil
}

// isExecutable checks the execute permission bit on a regular file.
func isExecutable(info os.FileInfo) bool {
	mode := info.Mode()
	return mode.IsRegular() && mode&0o111 != 0
}

// displayNames resolves the command name every file answers to in a
// listing. The used-name set is seeded with the sibling directory names;
// a file whose clean name is already taken marks that clean name collided.
// Collisions are symmetric: every file in a collided bucket shows its raw
// filename, while directories always keep their bare name.
func displayNames(dirs, files []string) []string {
	used := make(map[string]bool, len(dirs)+len(files))
	for _, d := range dirs {
		used[d] = true
	}
	collided := make(map[string]bool)
	clean := make([]string, len(files))
	for i, f := range files {
		clean[i] = CleanName(f)
		if used[clean[i]] {
			collided[clean[i]] = true
		} else {
			used[clean[i]] = true
		}
	}
	names := make([]string, len(files))
	for i, f := range files {
		if collided[clean[i]] {
			names[i] = f
		} else {
			names[i] = clean[i]
		}
	}
	return names
}

// sidecarDescription reads a directory's .shutl description, trimmed.
// Missing or unreadable sidecars mean no description.
func sidecarDescription(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, sidecarFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
