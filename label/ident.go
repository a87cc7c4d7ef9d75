package label

import (
	"fmt"
	"regexp"
	"strings"
)

// Ident is the canonical grouping key of a Selectable: a (kind, name) pair.
type Ident struct {
	kind Kind
	name string
}

var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_+][A-Za-z0-9._+:-]*$`)

// NewIdent creates a validated Ident from a kind and a name. The kind is
// normalized the way ParseKind does it.
func NewIdent(kind Kind, name string) (Ident, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return Ident{}, err
	}
	if name == "" {
		return Ident{}, fmt.Errorf("name cannot be empty")
	}
	if !nameRegex.MatchString(name) {
		return Ident{}, fmt.Errorf("invalid name %q", name)
	}
	return Ident{kind: kind, name: name}, nil
}

// MustIdent creates an Ident or panics. Use only for constants/tests.
func MustIdent(kind Kind, name string) Ident {
	id, err := NewIdent(kind, name)
	if err != nil {
		panic(err)
	}
	return id
}

// PackageIdent returns the Ident of the package called name.
func PackageIdent(name string) (Ident, error) {
	return NewIdent(KindPackage, name)
}

// ParseIdent parses the string form of an Ident. A prefix naming a known
// kind ("patch:amarok") selects that kind; anything else is a package name.
func ParseIdent(s string) (Ident, error) {
	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		if kind, err := ParseKind(prefix); err == nil {
			return NewIdent(kind, rest)
		}
	}
	return NewIdent(KindPackage, s)
}

// Kind returns the kind component.
func (i Ident) Kind() Kind {
	return i.kind
}

// Name returns the name component.
func (i Ident) Name() string {
	return i.name
}

// String returns the plain name for packages and "kind:name" otherwise.
func (i Ident) String() string {
	if i.kind == KindPackage {
		return i.name
	}
	return string(i.kind) + ":" + i.name
}

// IsEmpty returns true if this is a zero-value Ident.
func (i Ident) IsEmpty() bool {
	return i.name == ""
}

// Compare orders idents by kind, then by name.
func (i Ident) Compare(o Ident) int {
	if c := strings.Compare(string(i.kind), string(o.kind)); c != 0 {
		return c
	}
	return strings.Compare(i.name, o.name)
}
