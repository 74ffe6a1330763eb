// SPDX-License-Identifier: MPL-2.0

package annotation

import (
	"errors"
	"testing"
)

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role    Role
		want    bool
		wantErr bool
	}{
		{RolePositional, true, false},
		{RoleFlag, true, false},
		{RoleCatchAll, true, false},
		{"", false, true},
		{"POSITIONAL", false, true},
		{"argument", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.role.IsValid()
			if isValid != tt.want {
				t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("Role(%q).IsValid() returned no errors, want error", tt.role)
				}
				if !errors.Is(errs[0], ErrInvalidRole) {
					t.Errorf("error should wrap ErrInvalidRole, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("Role(%q).IsValid() returned unexpected errors: %v", tt.role, errs)
			}
		})
	}
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    Kind
		want    bool
		wantErr bool
	}{
		{KindPlain, true, false},
		{KindBool, true, false},
		{KindDir, true, false},
		{KindFile, true, false},
		{KindPath, true, false},
		{"", true, false},
		{"BOOL", false, true},
		{"directory", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.kind.IsValid()
			if isValid != tt.want {
				t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, isValid, tt.want)
			}
			if tt.wantErr && len(errs) == 0 {
				t.Fatalf("Kind(%q).IsValid() returned no errors, want error", tt.kind)
			}
			if tt.wantErr && !errors.Is(errs[0], ErrInvalidKind) {
				t.Errorf("error should wrap ErrInvalidKind, got: %v", errs[0])
			}
		})
	}
}

func TestArgSpec_GetKind(t *testing.T) {
	t.Parallel()

	zero := &ArgSpec{Name: "x"}
	if got := zero.GetKind(); got != KindPlain {
		t.Errorf("zero GetKind() = %q, want %q", got, KindPlain)
	}
	explicit := &ArgSpec{Name: "x", Kind: KindDir}
	if got := explicit.GetKind(); got != KindDir {
		t.Errorf("explicit GetKind() = %q, want %q", got, KindDir)
	}
}

func TestArgSpec_IsBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec ArgSpec
		want bool
	}{
		{"bool flag", ArgSpec{Role: RoleFlag, Kind: KindBool}, true},
		{"plain flag", ArgSpec{Role: RoleFlag}, false},
		{"bool positional stays positional", ArgSpec{Role: RolePositional, Kind: KindBool}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.spec.IsBool(); got != tt.want {
				t.Errorf("IsBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArgSpec_IsRequiredWithoutDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec ArgSpec
		want bool
	}{
		{"required without default", ArgSpec{Required: true}, true},
		{"required with default is satisfied", ArgSpec{Required: true, Default: "x", HasDefault: true}, false},
		{"required with empty default is satisfied", ArgSpec{Required: true, HasDefault: true}, false},
		{"optional", ArgSpec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.spec.IsRequiredWithoutDefault(); got != tt.want {
				t.Errorf("IsRequiredWithoutDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetadata_Accessors(t *testing.T) {
	t.Parallel()

	meta := &Metadata{Args: []ArgSpec{
		{Name: "first", Role: RolePositional},
		{Name: "verbose", Role: RoleFlag},
		{Name: "second", Role: RolePositional},
		{Name: CatchAllName, Role: RoleCatchAll},
	}}

	pos := meta.Positionals()
	if len(pos) != 2 || pos[0].Name != "first" || pos[1].Name != "second" {
		t.Errorf("Positionals() = %+v, want first,second in order", pos)
	}
	flags := meta.Flags()
	if len(flags) != 1 || flags[0].Name != "verbose" {
		t.Errorf("Flags() = %+v, want verbose", flags)
	}
	if ca := meta.CatchAll(); ca == nil || ca.Name != CatchAllName {
		t.Errorf("CatchAll() = %+v, want %q", ca, CatchAllName)
	}
	if got := meta.Lookup("second"); got == nil || got.Role != RolePositional {
		t.Errorf("Lookup(second) = %+v, want positional", got)
	}
	if got := meta.Lookup("missing"); got != nil {
		t.Errorf("Lookup(missing) = %+v, want nil", got)
	}
}

func TestMetadata_Empty(t *testing.T) {
	t.Parallel()

	meta := &Metadata{}
	if meta.CatchAll() != nil {
		t.Error("empty Metadata CatchAll() != nil")
	}
	if len(meta.Positionals()) != 0 || len(meta.Flags()) != 0 {
		t.Error("empty Metadata has declarations")
	}
}
