package label

import (
	"fmt"
	"regexp"
)

// Arch is a machine architecture such as "x86_64" or "noarch".
type Arch struct {
	name string
}

// Noarch is the architecture-independent arch.
var Noarch = Arch{name: "noarch"}

var archRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// compatTable lists, per system arch, the arches it can install in order of
// preference. Noarch is implicitly appended after every list.
var compatTable = map[string][]string{
	"x86_64":  {"x86_64", "i686", "i586", "i486", "i386"},
	"i686":    {"i686", "i586", "i486", "i386"},
	"i586":    {"i586", "i486", "i386"},
	"i486":    {"i486", "i386"},
	"i386":    {"i386"},
	"aarch64": {"aarch64"},
	"armv7hl": {"armv7hl", "armv6hl"},
	"armv6hl": {"armv6hl"},
	"ppc64le": {"ppc64le"},
	"ppc64":   {"ppc64", "ppc"},
	"ppc":     {"ppc"},
	"s390x":   {"s390x", "s390"},
	"s390":    {"s390"},
	"riscv64": {"riscv64"},
}

// NewArch creates a validated Arch.
func NewArch(name string) (Arch, error) {
	if name == "" {
		return Arch{}, fmt.Errorf("arch cannot be empty")
	}
	if !archRegex.MatchString(name) {
		return Arch{}, fmt.Errorf("invalid arch %q", name)
	}
	return Arch{name: name}, nil
}

// MustArch creates an Arch or panics. Use only for constants/tests.
func MustArch(name string) Arch {
	a, err := NewArch(name)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the arch name.
func (a Arch) String() string {
	return a.name
}

// IsEmpty returns true if this is a zero-value Arch.
func (a Arch) IsEmpty() bool {
	return a.name == ""
}

// IsNoarch reports whether a is architecture independent.
func (a Arch) IsNoarch() bool {
	return a.name == Noarch.name
}

// Score returns how strongly a system of arch sys prefers objects built for
// a. Higher is better; zero means a is not installable on sys at all.
// Native arches outrank their compatible fallbacks, and every installable
// arch outranks noarch.
func (a Arch) Score(sys Arch) int {
	if a.IsNoarch() {
		return 1
	}
	compat, ok := compatTable[sys.name]
	if !ok {
		// Unknown system arch: only an exact match counts.
		if a.name == sys.name {
			return 2
		}
		return 0
	}
	for i, name := range compat {
		if name == a.name {
			return len(compat) - i + 1
		}
	}
	return 0
}

// CompatibleWith reports whether objects built for a can be installed on sys.
func (a Arch) CompatibleWith(sys Arch) bool {
	return a.Score(sys) > 0
}
