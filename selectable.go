// Package selectable tracks, for every package identity, which objects are
// installed and available, and mediates every request to change what
// happens to that identity on commit.
//
// A [Selectable] groups the objects of one (kind, name) identity. Its
// available objects are ordered best first by the selection policy, its
// installed objects newest first. From those it derives a candidate, an
// installed representative and one aggregate [Fate]. Requests to change the
// fate (or the user-facing [status.Status]) carry a [pool.Causer]; a request
// may not override a decision made with a higher rank.
//
// Basic usage:
//
//	px, err := selectable.NewProxy(p)
//	if err != nil {
//	    return err
//	}
//	s := px.Get(label.MustIdent(label.KindPackage, "amarok"))
//	if s != nil && !s.SetToInstall(pool.CauserUser) {
//	    // rejected: no candidate, locked, or decided by a higher rank
//	}
//
// Policy rejections are reported as false and never mutate state. Using a
// Selectable after its pool was reloaded is a programming error and panics
// with a *ContractError.
package selectable

import (
	"iter"
	"slices"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/selection"
)

// Selectable collects the objects of the same kind and name.
//
// It is not safe for concurrent use; callers that share a Proxy between
// goroutines must serialize access.
type Selectable struct {
	proxy      *Proxy
	generation uint64
	dropped    bool

	ident     label.Ident
	installed []pool.Item // newest install first
	available []pool.Item // best first
	candidate pool.Item   // explicit override, member of available
}

func newSelectable(px *Proxy, id label.Ident, installed, available []pool.Item) *Selectable {
	if len(installed)+len(available) == 0 {
		violate(CodeEmpty, "no objects for %s", id)
	}
	s := &Selectable{
		proxy:      px,
		generation: px.pool.Generation(),
		ident:      id,
	}
	s.reset(installed, available)
	return s
}

// reset replaces the object sets. An override that is no longer available
// falls back to the policy default. Objects joining an existing Selectable
// take over its current authority, so a new candidate cannot lower
// ModifiedBy.
func (s *Selectable) reset(installed, available []pool.Item) {
	before := s.items()
	authority := pool.CauserSolver
	if len(before) > 0 {
		authority = s.modifiedBy()
	}

	s.installed = slices.Clone(installed)
	s.available = slices.Clone(available)
	selection.SortInstalled(s.installed)
	s.policy().SortAvailable(s.available)
	if !s.candidate.IsZero() && !slices.Contains(s.available, s.candidate) {
		s.candidate = pool.Item{}
	}

	for _, it := range s.items() {
		if !slices.Contains(before, it) && it.Status().Causer() < authority {
			it.Status().SetCauser(authority)
		}
	}
}

// check panics if the Selectable must no longer be used.
func (s *Selectable) check() {
	s.proxy.sync()
	if s.dropped || s.generation != s.proxy.pool.Generation() {
		violate(CodeStale, "%s used after its pool changed", s.ident)
	}
}

func (s *Selectable) policy() selection.Policy { return s.proxy.cfg.policy }

// Ident returns the identity.
func (s *Selectable) Ident() label.Ident {
	s.check()
	return s.ident
}

// Kind returns the kind of the objects.
func (s *Selectable) Kind() label.Kind {
	s.check()
	return s.ident.Kind()
}

// Name returns the name of the objects.
func (s *Selectable) Name() string {
	s.check()
	return s.ident.Name()
}

// InstalledObj returns the installed representative: the installed object
// marked for deletion if there is one, otherwise the latest installed.
func (s *Selectable) InstalledObj() pool.Item {
	s.check()
	return s.installedObj()
}

func (s *Selectable) installedObj() pool.Item {
	for _, it := range s.installed {
		if it.Status().Transacts() {
			return it
		}
	}
	if len(s.installed) == 0 {
		return pool.Item{}
	}
	return s.installed[0]
}

// CandidateObj returns the 'best' or 'most interesting' available object:
// the one marked for installation if there is one, else an explicitly set
// candidate, else the policy default.
func (s *Selectable) CandidateObj() pool.Item {
	s.check()
	return s.candidateObj()
}

func (s *Selectable) candidateObj() pool.Item {
	if trans := s.transactingCandidate(); !trans.IsZero() {
		return trans
	}
	if !s.candidate.IsZero() {
		return s.candidate
	}
	return s.defaultCandidate()
}

func (s *Selectable) transactingCandidate() pool.Item {
	for _, it := range s.available {
		if it.Status().Transacts() {
			return it
		}
	}
	return pool.Item{}
}

func (s *Selectable) defaultCandidate() pool.Item {
	if len(s.available) == 0 {
		return pool.Item{}
	}
	return s.available[0]
}

// CandidateObjFrom returns the best object provided by repo. Unlike
// CandidateObj this may be absent even if objects are available.
func (s *Selectable) CandidateObjFrom(repo *pool.Repository) pool.Item {
	s.check()
	return s.policy().CandidateFrom(s.available, repo)
}

// UpdateCandidateObj returns the best candidate for an update, if any. It
// is absent when the best object is already installed or every available
// object violates update policy.
func (s *Selectable) UpdateCandidateObj() pool.Item {
	s.check()
	return s.updateCandidateObj()
}

func (s *Selectable) updateCandidateObj() pool.Item {
	return s.policy().UpdateCandidate(s.installedObj(), s.available)
}

// TheObj returns an object that may stand for the whole Selectable: the
// candidate, or the installed representative if nothing is available.
func (s *Selectable) TheObj() pool.Item {
	s.check()
	if cand := s.candidateObj(); !cand.IsZero() {
		return cand
	}
	return s.installedObj()
}

// IdenticalInstalled reports whether it has the same content as one of
// the installed objects.
func (s *Selectable) IdenticalInstalled(it pool.Item) bool {
	s.check()
	return s.identicalInstalled(it)
}

func (s *Selectable) identicalInstalled(it pool.Item) bool {
	if it.IsZero() {
		return false
	}
	for _, inst := range s.installed {
		if inst.Identical(it) {
			return true
		}
	}
	return false
}

// IdenticalInstalledCandidate reports whether the candidate is installed.
func (s *Selectable) IdenticalInstalledCandidate() bool {
	s.check()
	return s.identicalInstalled(s.candidateObj())
}

// IdenticalInstalledUpdateCandidate reports whether the update candidate
// is installed.
func (s *Selectable) IdenticalInstalledUpdateCandidate() bool {
	s.check()
	return s.identicalInstalled(s.updateCandidateObj())
}

// InstalledAsKind returns the installed representative narrowed to kind.
func (s *Selectable) InstalledAsKind(kind label.Kind) (pool.Item, bool) {
	s.check()
	return s.installedObj().AsKind(kind)
}

// CandidateAsKind returns the candidate narrowed to kind.
func (s *Selectable) CandidateAsKind(kind label.Kind) (pool.Item, bool) {
	s.check()
	return s.candidateObj().AsKind(kind)
}

// AvailableEmpty reports whether no objects are available.
func (s *Selectable) AvailableEmpty() bool {
	s.check()
	return len(s.available) == 0
}

// AvailableSize returns the number of available objects.
func (s *Selectable) AvailableSize() int {
	s.check()
	return len(s.available)
}

// Available iterates over the available objects, best first.
func (s *Selectable) Available() iter.Seq[pool.Item] {
	s.check()
	return slices.Values(slices.Clone(s.available))
}

// InstalledEmpty reports whether no objects are installed.
func (s *Selectable) InstalledEmpty() bool {
	s.check()
	return len(s.installed) == 0
}

// InstalledSize returns the number of installed objects.
func (s *Selectable) InstalledSize() int {
	s.check()
	return len(s.installed)
}

// Installed iterates over the installed objects, latest install first.
func (s *Selectable) Installed() iter.Seq[pool.Item] {
	s.check()
	return slices.Values(slices.Clone(s.installed))
}

// HasObject reports whether an installed or a candidate object is present.
func (s *Selectable) HasObject() bool {
	return s.HasInstalledObj() || s.HasCandidateObj()
}

// HasInstalledObj reports whether an installed object is present.
func (s *Selectable) HasInstalledObj() bool {
	return !s.InstalledEmpty()
}

// HasCandidateObj reports whether a candidate object is present.
func (s *Selectable) HasCandidateObj() bool {
	return !s.CandidateObj().IsZero()
}

// HasBothObjects reports whether installed and candidate objects are present.
func (s *Selectable) HasBothObjects() bool {
	return s.HasInstalledObj() && s.HasCandidateObj()
}

// HasInstalledObjOnly reports an installed object without a candidate.
func (s *Selectable) HasInstalledObjOnly() bool {
	return s.HasInstalledObj() && !s.HasCandidateObj()
}

// HasCandidateObjOnly reports a candidate without an installed object.
func (s *Selectable) HasCandidateObjOnly() bool {
	return !s.HasInstalledObj() && s.HasCandidateObj()
}

// IsUnmaintained reports an installed object that no repository provides
// a replacement for.
func (s *Selectable) IsUnmaintained() bool {
	return s.HasInstalledObj() && s.AvailableEmpty()
}

// ModifiedBy returns who caused the current fate.
func (s *Selectable) ModifiedBy() pool.Causer {
	s.check()
	return s.modifiedBy()
}

func (s *Selectable) modifiedBy() pool.Causer {
	cand, inst := s.candidateObj(), s.installedObj()
	switch {
	case !cand.IsZero() && cand.Status().Transacts():
		return cand.Status().Causer()
	case !inst.IsZero() && inst.Status().Transacts():
		return inst.Status().Causer()
	case !cand.IsZero():
		return cand.Status().Causer()
	case !inst.IsZero():
		return inst.Status().Causer()
	}
	return pool.CauserSolver
}

// locked reports whether the Selectable is locked in its current state:
// all installed objects locked if there are any, else all available ones.
func (s *Selectable) locked() bool {
	set := s.installed
	if len(set) == 0 {
		set = s.available
	}
	if len(set) == 0 {
		return false
	}
	for _, it := range set {
		if !it.Status().Locked() {
			return false
		}
	}
	return true
}

// Locked reports whether the Selectable is locked in its current state.
func (s *Selectable) Locked() bool {
	s.check()
	return s.locked()
}

func (s *Selectable) items() []pool.Item {
	return append(slices.Clone(s.installed), s.available...)
}
