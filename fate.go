package selectable

import (
	"slices"

	"github.com/albertocavalcante/go-selectable/pool"
)

// Fate is what happens to a Selectable on commit.
type Fate int

// Fate values.
const (
	ToDelete   Fate = -1
	Unmodified Fate = 0
	ToInstall  Fate = 1
)

func (f Fate) String() string {
	switch f {
	case ToDelete:
		return "ToDelete"
	case ToInstall:
		return "ToInstall"
	default:
		return "Unmodified"
	}
}

// Fate returns the current fate.
func (s *Selectable) Fate() Fate {
	s.check()
	return s.fate()
}

func (s *Selectable) fate() Fate {
	if cand := s.candidateObj(); !cand.IsZero() && cand.Status().Transacts() {
		return ToInstall
	}
	if inst := s.installedObj(); !inst.IsZero() && inst.Status().Transacts() {
		return ToDelete
	}
	return Unmodified
}

// Unmodified reports neither install nor delete.
func (s *Selectable) Unmodified() bool { return s.Fate() == Unmodified }

// ToModify reports either install or delete.
func (s *Selectable) ToModify() bool { return s.Fate() != Unmodified }

// ToDelete reports a pending delete.
func (s *Selectable) ToDelete() bool { return s.Fate() == ToDelete }

// ToInstall reports a pending install.
func (s *Selectable) ToInstall() bool { return s.Fate() == ToInstall }

// OnSystem reports whether the identity would be on the system after commit.
func (s *Selectable) OnSystem() bool {
	return (s.HasInstalledObj() && !s.ToDelete()) ||
		(s.HasCandidateObj() && s.ToInstall())
}

// OffSystem reports whether the identity would be off the system after commit.
func (s *Selectable) OffSystem() bool { return !s.OnSystem() }

// SetFate requests target on behalf of causer.
//
// The request is rejected without changing anything when
//   - target is ToDelete and nothing is installed,
//   - target is ToInstall and there is no candidate,
//   - the current fate or lock was set with a higher rank than causer.
//
// A fate change on a locked Selectable releases the lock, so a lock holds
// against every rank below the one that set it.
func (s *Selectable) SetFate(target Fate, causer pool.Causer) bool {
	s.check()
	return s.setFate(target, causer)
}

func (s *Selectable) setFate(target Fate, causer pool.Causer) bool {
	switch {
	case target == ToDelete && len(s.installed) == 0:
		return s.reject(target, causer, "nothing installed")
	case target == ToInstall && s.candidateObj().IsZero():
		return s.reject(target, causer, "no candidate")
	}

	current := s.fate()
	if target == current {
		if causer > s.modifiedBy() {
			s.stamp(causer)
		}
		return true
	}
	if causer < s.modifiedBy() {
		return s.reject(target, causer, "decided by "+s.modifiedBy().String())
	}

	cand, inst := s.candidateObj(), s.installedObj()
	for _, it := range s.items() {
		it.Status().SetTransact(false, causer)
		if target != Unmodified && it.Status().Locked() {
			it.Status().SetLock(false, causer)
		}
	}
	switch target {
	case ToInstall:
		cand.Status().SetTransact(true, causer)
	case ToDelete:
		inst.Status().SetTransact(true, causer)
	}
	s.proxy.cfg.log().Debug("fate changed",
		"ident", s.ident.String(),
		"from", current.String(),
		"to", target.String(),
		"causer", causer.String())
	return true
}

// stamp records causer as the authority behind the current state.
func (s *Selectable) stamp(causer pool.Causer) {
	for _, it := range s.items() {
		it.Status().SetCauser(causer)
	}
}

func (s *Selectable) reject(target Fate, causer pool.Causer, reason string) bool {
	s.proxy.cfg.log().Debug("fate change rejected",
		"ident", s.ident.String(),
		"target", target.String(),
		"causer", causer.String(),
		"reason", reason)
	return false
}

// SetToInstall selects the candidate for installation (new- or re-install).
func (s *Selectable) SetToInstall(causer pool.Causer) bool {
	return s.SetFate(ToInstall, causer)
}

// SetToDelete selects the installed object for deletion.
func (s *Selectable) SetToDelete(causer pool.Causer) bool {
	return s.SetFate(ToDelete, causer)
}

// Unset requests that the Selectable stays unmodified.
func (s *Selectable) Unset(causer pool.Causer) bool {
	return s.SetFate(Unmodified, causer)
}

// SetInstalled takes care the identity gets installed if it is not.
func (s *Selectable) SetInstalled(causer pool.Causer) bool {
	s.check()
	if len(s.installed) > 0 && s.fate() != ToDelete {
		return true
	}
	return s.setFate(ToInstall, causer)
}

// SetDeleted takes care the identity gets deleted if it is installed.
func (s *Selectable) SetDeleted(causer pool.Causer) bool {
	s.check()
	if len(s.installed) == 0 || s.fate() == ToDelete {
		return true
	}
	return s.setFate(ToDelete, causer)
}

// SetUpToDate takes care the identity gets installed if it is not, or
// updated if what is installed is older than the best candidate and update
// policy allows it.
func (s *Selectable) SetUpToDate(causer pool.Causer) bool {
	s.check()
	if len(s.installed) == 0 {
		return s.setFate(ToInstall, causer)
	}
	inst, best := s.installedObj(), s.defaultCandidate()
	if best.IsZero() || best.Identical(inst) || inst.Edition().Compare(best.Edition()) >= 0 {
		return true
	}
	upd := s.updateCandidateObj()
	if upd.IsZero() {
		return true
	}
	return s.atomically(func() bool {
		if _, ok := s.setCandidate(upd, causer); !ok {
			return false
		}
		return s.setFate(ToInstall, causer)
	})
}

// SetCandidate sets the candidate out of the available objects and returns
// the resulting candidate.
//
// An invalid choice (the zero Item, or an object that is not available)
// clears any previous choice: the policy default becomes the candidate again
// and the call succeeds. Moving a pending install to the new candidate needs
// the same rank that is required to change the fate; without it nothing
// changes and SetCandidate returns the zero Item and false.
func (s *Selectable) SetCandidate(it pool.Item, causer pool.Causer) (pool.Item, bool) {
	s.check()
	return s.setCandidate(it, causer)
}

func (s *Selectable) setCandidate(it pool.Item, causer pool.Causer) (pool.Item, bool) {
	if it.IsZero() || !slices.Contains(s.available, it) {
		s.candidate = pool.Item{}
		return s.candidateObj(), true
	}

	if trans := s.transactingCandidate(); !trans.IsZero() && trans != it {
		if causer < trans.Status().Causer() {
			s.reject(ToInstall, causer, "pending install decided by "+trans.Status().Causer().String())
			return pool.Item{}, false
		}
		if it.Status().Locked() && causer < it.Status().Causer() {
			s.reject(ToInstall, causer, "candidate locked by "+it.Status().Causer().String())
			return pool.Item{}, false
		}
		trans.Status().SetTransact(false, causer)
		if it.Status().Locked() {
			it.Status().SetLock(false, causer)
		}
		it.Status().SetTransact(true, causer)
	}
	s.candidate = it
	return it, true
}

// SetOnSystem arranges for it to be on the system after commit. If it is
// already installed (same content) nothing changes. Otherwise it becomes the
// candidate and is selected for installation; if either step is rejected
// neither takes effect. it must be one of the available objects.
func (s *Selectable) SetOnSystem(it pool.Item, causer pool.Causer) bool {
	s.check()
	if s.identicalInstalled(it) {
		return true
	}
	if it.IsZero() || !slices.Contains(s.available, it) {
		return false
	}
	return s.atomically(func() bool {
		if _, ok := s.setCandidate(it, causer); !ok {
			return false
		}
		return s.setFate(ToInstall, causer)
	})
}

// snapshot captures everything a command may change.
type snapshot struct {
	candidate pool.Item
	items     []pool.Item
	statuses  []pool.Status
}

func (s *Selectable) snapshot() snapshot {
	snap := snapshot{candidate: s.candidate, items: s.items()}
	snap.statuses = make([]pool.Status, len(snap.items))
	for i, it := range snap.items {
		snap.statuses[i] = *it.Status()
	}
	return snap
}

func (s *Selectable) restore(snap snapshot) {
	s.candidate = snap.candidate
	for i, it := range snap.items {
		*it.Status() = snap.statuses[i]
	}
}

// atomically runs fn and undoes its changes if it reports failure.
func (s *Selectable) atomically(fn func() bool) bool {
	snap := s.snapshot()
	if fn() {
		return true
	}
	s.restore(snap)
	return false
}
