// Package status defines the user-facing status vocabulary of a Selectable
// and the mapping between it and the underlying (fate, lock) state.
//
// A Status is never stored. [Derive] computes it from what a Selectable
// knows about itself, and [Realize] tells which fate and lock bit a
// requested Status stands for.
package status

import (
	"fmt"
	"strings"
)

// Status is the user-facing state of a Selectable.
type Status int

// Status values.
const (
	// NoInst: not installed, stays that way.
	NoInst Status = iota
	// KeepInstalled: installed, stays that way.
	KeepInstalled
	// Install: not installed, to be installed on user request.
	Install
	// Update: installed, to be replaced on user request.
	Update
	// Del: installed, to be deleted on user request.
	Del
	// AutoInstall: like Install, requested below user level.
	AutoInstall
	// AutoUpdate: like Update, requested below user level.
	AutoUpdate
	// AutoDel: like Del, requested below user level.
	AutoDel
	// Protected: installed and locked in that state.
	Protected
	// Taboo: not installed and locked in that state.
	Taboo
)

type info struct {
	name string
	code string
}

var infos = map[Status]info{
	NoInst:        {"NoInst", "  "},
	KeepInstalled: {"KeepInstalled", "i "},
	Install:       {"Install", "+ "},
	Update:        {"Update", "> "},
	Del:           {"Del", "- "},
	AutoInstall:   {"AutoInstall", "a+"},
	AutoUpdate:    {"AutoUpdate", "a>"},
	AutoDel:       {"AutoDel", "a-"},
	Protected:     {"Protected", "il"},
	Taboo:         {"Taboo", "-l"},
}

// All returns every Status in declaration order.
func All() []Status {
	return []Status{NoInst, KeepInstalled, Install, Update, Del, AutoInstall, AutoUpdate, AutoDel, Protected, Taboo}
}

// String returns the status name.
func (s Status) String() string {
	if i, ok := infos[s]; ok {
		return i.name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Code returns a fixed two-character code for listings.
func (s Status) Code() string {
	if i, ok := infos[s]; ok {
		return i.code
	}
	return "??"
}

// Parse returns the Status called name, ignoring case.
func Parse(name string) (Status, error) {
	for s, i := range infos {
		if strings.EqualFold(i.name, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsAuto reports whether s is one of the below-user-level transaction
// states. Those can be queried but never requested.
func (s Status) IsAuto() bool {
	return s == AutoInstall || s == AutoUpdate || s == AutoDel
}

// IsLocked reports whether s is a locked state.
func (s Status) IsLocked() bool {
	return s == Protected || s == Taboo
}

// Transacts reports whether s describes a pending install, update or delete.
func (s Status) Transacts() bool {
	switch s {
	case Install, Update, Del, AutoInstall, AutoUpdate, AutoDel:
		return true
	}
	return false
}
