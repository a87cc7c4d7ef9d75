package pool

import (
	"fmt"
	"time"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/selection/edition"
)

// Solvable holds the immutable attributes of an object.
type Solvable struct {
	Kind        label.Kind
	Name        string
	Edition     edition.Edition
	Arch        label.Arch
	Vendor      string
	BuildTime   time.Time
	InstallTime time.Time
	Installed   bool

	// Repository is ignored for installed objects, which always belong to
	// the system repository.
	Repository *Repository

	// Category is the patch category ("security", "recommended", ...).
	// Empty for other kinds.
	Category string
}

type entry struct {
	id     int
	ident  label.Ident
	solv   Solvable
	status Status
}

// Item is a handle to an object in a Pool. The zero Item is the "absent"
// sentinel; all accessors return zero values for it.
type Item struct {
	e *entry
}

// IsZero reports whether the Item is absent.
func (it Item) IsZero() bool { return it.e == nil }

// ID returns the pool-assigned identifier. IDs grow in insertion order.
func (it Item) ID() int {
	if it.e == nil {
		return 0
	}
	return it.e.id
}

// Ident returns the (kind, name) key of the object.
func (it Item) Ident() label.Ident {
	if it.e == nil {
		return label.Ident{}
	}
	return it.e.ident
}

// Kind returns the object kind.
func (it Item) Kind() label.Kind {
	if it.e == nil {
		return ""
	}
	return it.e.solv.Kind
}

// Name returns the object name.
func (it Item) Name() string {
	if it.e == nil {
		return ""
	}
	return it.e.solv.Name
}

// Edition returns the object edition.
func (it Item) Edition() edition.Edition {
	if it.e == nil {
		return edition.Edition{}
	}
	return it.e.solv.Edition
}

// Arch returns the object architecture.
func (it Item) Arch() label.Arch {
	if it.e == nil {
		return label.Arch{}
	}
	return it.e.solv.Arch
}

// Vendor returns the object vendor.
func (it Item) Vendor() string {
	if it.e == nil {
		return ""
	}
	return it.e.solv.Vendor
}

// BuildTime returns the object build time.
func (it Item) BuildTime() time.Time {
	if it.e == nil {
		return time.Time{}
	}
	return it.e.solv.BuildTime
}

// InstallTime returns when the object was installed. Zero for available
// objects.
func (it Item) InstallTime() time.Time {
	if it.e == nil {
		return time.Time{}
	}
	return it.e.solv.InstallTime
}

// Repository returns the origin repository.
func (it Item) Repository() *Repository {
	if it.e == nil {
		return nil
	}
	return it.e.solv.Repository
}

// Installed reports whether the object is installed on the system.
func (it Item) Installed() bool {
	return it.e != nil && it.e.solv.Installed
}

// Category returns the patch category.
func (it Item) Category() string {
	if it.e == nil {
		return ""
	}
	return it.e.solv.Category
}

// Status returns the mutable status of the object, or nil for the zero Item.
func (it Item) Status() *Status {
	if it.e == nil {
		return nil
	}
	return &it.e.status
}

// Identical reports whether it and o have the same content: name, edition,
// arch, vendor and build time. Two absent items are not identical.
func (it Item) Identical(o Item) bool {
	if it.e == nil || o.e == nil {
		return false
	}
	a, b := &it.e.solv, &o.e.solv
	return a.Name == b.Name &&
		a.Edition == b.Edition &&
		a.Arch == b.Arch &&
		a.Vendor == b.Vendor &&
		a.BuildTime.Equal(b.BuildTime)
}

// AsKind narrows it to kind. It returns the item and true if the item is
// present and of the requested kind, the zero Item and false otherwise.
func (it Item) AsKind(kind label.Kind) (Item, bool) {
	if it.e == nil || it.e.solv.Kind != kind {
		return Item{}, false
	}
	return it, true
}

// String returns "name-edition.arch" followed by the repository name.
func (it Item) String() string {
	if it.e == nil {
		return "<none>"
	}
	s := it.e.solv
	name := it.e.ident.String()
	if s.Edition.IsEmpty() {
		return fmt.Sprintf("%s.%s (%s)", name, s.Arch, s.Repository.Name())
	}
	return fmt.Sprintf("%s-%s.%s (%s)", name, s.Edition, s.Arch, s.Repository.Name())
}
