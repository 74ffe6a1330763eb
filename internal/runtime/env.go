// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strings"

	"github.com/k15r/shutl/pkg/annotation"
)

type (
	// EnvVar is one computed environment variable for the child process.
	EnvVar struct {
		Name  string
		Value string
	}

	// Invocation carries what the user actually supplied on the command
	// line, separated from the script's declarations so the resolution
	// rules live in exactly one place (BuildEnv).
	Invocation struct {
		// Supplied maps declared names to user-provided values, for
		// positionals and non-bool flags. Entries exist only for values
		// the user typed; defaults are not pre-applied.
		Supplied map[string]string
		// BoolSet records bool flags supplied as --<name>.
		BoolSet map[string]bool
		// Negated records bool flags supplied as --no-<name>.
		Negated map[string]bool
		// Extra holds the positional tokens beyond the declared ones, in
		// order, for the catch-all.
		Extra []string
		// Verbose is the hidden diagnostic flag: dump the computed
		// environment and the resolved path before spawning.
		Verbose bool
	}
)

// BuildEnv computes the child's declared environment variables, one per
// declaration, in declaration order:
//
//   - positional or non-bool flag: the supplied value, else the declared
//     default, else ""
//   - bool flag: --no-<name> forces "false" and beats everything; --<name>
//     yields "true"; else the declared default verbatim; else "false"
//   - catch-all: the space-join of the extra tokens; a declared catch-all
//     is always present (possibly empty), an undeclared one never is
func BuildEnv(meta *annotation.Metadata, inv Invocation) []EnvVar {
	vars := make([]EnvVar, 0, len(meta.Args))
	for i := range meta.Args {
		spec := &meta.Args[i]
		vars = append(vars, EnvVar{
			Name:  annotation.EnvVar(spec.Name),
			Value: resolveValue(spec, inv),
		})
	}
	return vars
}

func resolveValue(spec *annotation.ArgSpec, inv Invocation) string {
	switch {
	case spec.Role == annotation.RoleCatchAll:
		return strings.Join(inv.Extra, " ")
	case spec.IsBool():
		switch {
		case inv.Negated[spec.Name]:
			return "false"
		case inv.BoolSet[spec.Name]:
			return "true"
		case spec.HasDefault:
			return spec.Default
		default:
			return "false"
		}
	default:
		if v, ok := inv.Supplied[spec.Name]; ok {
			return v
		}
		if spec.HasDefault {
			return spec.Default
		}
		return ""
	}
}

// EnvToSlice renders computed variables as KEY=VALUE strings for exec.Cmd.
func EnvToSlice(vars []EnvVar) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name + "=" + v.Value
	}
	return out
}
