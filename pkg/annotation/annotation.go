// SPDX-License-Identifier: MPL-2.0

package annotation

import (
	"errors"
	"fmt"
)

const (
	// RolePositional is an `arg:` declaration, filled from argv by position.
	RolePositional Role = "positional"
	// RoleFlag is a `flag:` declaration, filled from a --name token.
	RoleFlag Role = "flag"
	// RoleCatchAll is the `arg: ...` declaration that absorbs every
	// positional token beyond the declared ones.
	RoleCatchAll Role = "catch-all"
)

const (
	// KindPlain is the default kind: an opaque string value.
	KindPlain Kind = "plain"
	// KindBool marks a flag as boolean (present/absent, plus a paired
	// --no-<name> negation).
	KindBool Kind = "bool"
	// KindDir marks a value as a directory path (directory completion).
	KindDir Kind = "dir"
	// KindFile marks a value as a file path (file completion).
	KindFile Kind = "file"
	// KindPath marks a value as a generic filesystem path.
	KindPath Kind = "path"
)

var (
	// ErrInvalidRole is the sentinel error wrapped by InvalidRoleError.
	ErrInvalidRole = errors.New("invalid argument role")
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid argument kind")
)

type (
	// Role distinguishes how a declared argument is filled at invocation
	// time: by position, by --flag token, or by absorbing the remainder.
	Role string

	// Kind refines how a declared value is interpreted and completed.
	// The zero value ("") is valid and is treated as KindPlain by GetKind().
	Kind string

	// InvalidRoleError is returned when a Role value is not recognized.
	// It wraps ErrInvalidRole for errors.Is() compatibility.
	InvalidRoleError struct {
		Value Role
	}

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// ArgSpec is one declared argument or flag of a script.
	ArgSpec struct {
		// Name is the declared name (hyphenated, as typed in the header).
		// The catch-all declaration is normalized to CatchAllName.
		Name string
		// Description is the help text, with any attribute list stripped.
		Description string
		// Role says how the value is supplied (positional, flag, catch-all).
		Role Role
		// Kind refines the value interpretation (optional, defaults to plain).
		Kind Kind
		// Required marks the argument as mandatory. A Default satisfies a
		// required argument, so only Required without HasDefault is enforced.
		Required bool
		// Default is the value used when none is supplied.
		Default string
		// HasDefault distinguishes an explicit empty default from no default.
		HasDefault bool
		// Options are the enumerated legal values (only meaningful for
		// KindPlain). Order is the declaration order.
		Options []string
		// CompletionRoot optionally scopes dir/file/path completion.
		CompletionRoot string
	}

	// Metadata is a script's parsed interface declaration.
	Metadata struct {
		// Description is the script's one-line help text.
		Description string
		// Args holds every declaration in header order. Positional order is
		// significant; flag order is not.
		Args []ArgSpec
	}
)

// Error implements the error interface for InvalidRoleError.
func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid argument role %q (valid: positional, flag, catch-all)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRoleError) Unwrap() error { return ErrInvalidRole }

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid argument kind %q (valid: plain, bool, dir, file, path)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// IsValid returns whether the Role is one of the defined roles, and a list
// of validation errors if it is not.
func (r Role) IsValid() (bool, []error) {
	switch r {
	case RolePositional, RoleFlag, RoleCatchAll:
		return true, nil
	default:
		return false, []error{&InvalidRoleError{Value: r}}
	}
}

// IsValid returns whether the Kind is one of the defined kinds, and a list
// of validation errors if it is not.
// Note: the zero value ("") is valid and is treated as plain by GetKind().
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindPlain, KindBool, KindDir, KindFile, KindPath, "":
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// GetKind returns the effective kind (defaults to KindPlain if not specified).
func (s *ArgSpec) GetKind() Kind {
	if s.Kind == "" {
		return KindPlain
	}
	return s.Kind
}

// IsBool reports whether this is a boolean flag. Only flags have boolean
// semantics; a positional declared with the bool attribute is still filled
// like any plain positional.
func (s *ArgSpec) IsBool() bool {
	return s.Role == RoleFlag && s.GetKind() == KindBool
}

// IsRequiredWithoutDefault reports whether the argument must be supplied on
// the command line. A declared default satisfies a required argument.
func (s *ArgSpec) IsRequiredWithoutDefault() bool {
	return s.Required && !s.HasDefault
}

// Positionals returns the positional declarations in header order,
// excluding the catch-all.
func (m *Metadata) Positionals() []ArgSpec {
	var out []ArgSpec
	for _, a := range m.Args {
		if a.Role == RolePositional {
			out = append(out, a)
		}
	}
	return out
}

// Flags returns the flag declarations in header order.
func (m *Metadata) Flags() []ArgSpec {
	var out []ArgSpec
	for _, a := range m.Args {
		if a.Role == RoleFlag {
			out = append(out, a)
		}
	}
	return out
}

// CatchAll returns the catch-all declaration, or nil if the script does not
// declare one.
func (m *Metadata) CatchAll() *ArgSpec {
	for i := range m.Args {
		if m.Args[i].Role == RoleCatchAll {
			return &m.Args[i]
		}
	}
	return nil
}

// Lookup returns the declaration with the given name, or nil.
func (m *Metadata) Lookup(name string) *ArgSpec {
	for i := range m.Args {
		if m.Args[i].Name == name {
			return &m.Args[i]
		}
	}
	return nil
}
