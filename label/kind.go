package label

import (
	"fmt"
	"strings"
)

// Kind is the kind of a package object.
type Kind string

// Known kinds.
const (
	KindPackage     Kind = "package"
	KindPatch       Kind = "patch"
	KindPattern     Kind = "pattern"
	KindProduct     Kind = "product"
	KindSrcPackage  Kind = "srcpackage"
	KindApplication Kind = "application"
)

var knownKinds = []Kind{
	KindPackage,
	KindPatch,
	KindPattern,
	KindProduct,
	KindSrcPackage,
	KindApplication,
}

// ParseKind returns the Kind named by s (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range knownKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Kinds returns all known kinds.
func Kinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// IsPseudoInstalled reports whether objects of this kind are never
// installed as such but classified by the solver (relevant, satisfied,
// broken) instead.
func (k Kind) IsPseudoInstalled() bool {
	return k == KindPatch
}
