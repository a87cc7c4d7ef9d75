package selectable

import (
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/status"
)

func (s *Selectable) statusInputs() status.Inputs {
	cand, inst := s.candidateObj(), s.installedObj()
	in := status.Inputs{
		HasInstalled:    !inst.IsZero(),
		HasCandidate:    !cand.IsZero(),
		Fate:            status.Fate(s.fate()),
		Locked:          s.locked(),
		PseudoInstalled: s.ident.Kind().IsPseudoInstalled(),
	}
	switch in.Fate {
	case status.FateInstall:
		in.ByUser = cand.Status().ByUser()
	case status.FateDelete:
		in.ByUser = inst.Status().ByUser()
	}
	if !cand.IsZero() {
		in.Satisfied = cand.Status().Establish() == pool.EstablishSatisfied
	}
	return in
}

// Status returns the current user-facing status.
func (s *Selectable) Status() status.Status {
	s.check()
	return status.Derive(s.statusInputs())
}

// SetStatus requests target on behalf of causer. It returns false without
// changing anything if target cannot be reached with the objects at hand
// (for example Install without a candidate, or any automatic state) or if
// causer lacks the rank to make the change.
func (s *Selectable) SetStatus(target status.Status, causer pool.Causer) bool {
	s.check()
	plan, ok := status.Realize(target, len(s.installed) > 0, !s.candidateObj().IsZero())
	if !ok {
		s.proxy.cfg.log().Debug("status not reachable",
			"ident", s.ident.String(),
			"status", target.String())
		return false
	}
	if status.Derive(s.statusInputs()) == target {
		return true
	}
	return s.atomically(func() bool {
		if plan.Lock {
			return s.setFate(Unmodified, causer) && s.setLock(true, causer)
		}
		return s.setLock(false, causer) && s.setFate(Fate(plan.Fate), causer)
	})
}

// setLock locks or unlocks the Selectable in its current state: the
// installed objects if there are any, else the available ones. Changing the
// lock needs at least the rank that made the current decision.
func (s *Selectable) setLock(on bool, causer pool.Causer) bool {
	if s.locked() == on {
		return true
	}
	if causer < s.modifiedBy() {
		return s.reject(s.fate(), causer, "lock decided by "+s.modifiedBy().String())
	}
	set := s.installed
	if len(set) == 0 {
		set = s.available
	}
	for _, it := range s.items() {
		it.Status().SetCauser(causer)
	}
	for _, it := range set {
		it.Status().SetLock(on, causer)
	}
	return true
}

// IsUndetermined reports that the solver has not classified the candidate.
// Always true for kinds that are really installed (packages).
func (s *Selectable) IsUndetermined() bool {
	s.check()
	if !s.ident.Kind().IsPseudoInstalled() {
		return true
	}
	cand := s.candidateObj()
	return cand.IsZero() || cand.Status().Establish() == pool.EstablishUndetermined
}

// IsRelevant reports a relevant patch: at least one object it affects is
// installed.
func (s *Selectable) IsRelevant() bool {
	return s.establishedAs(pool.EstablishSatisfied, pool.EstablishBroken)
}

// IsSatisfied reports a relevant patch whose requirements are met.
func (s *Selectable) IsSatisfied() bool {
	return s.establishedAs(pool.EstablishSatisfied)
}

// IsBroken reports a relevant patch whose requirements are not met.
func (s *Selectable) IsBroken() bool {
	return s.establishedAs(pool.EstablishBroken)
}

// IsNeeded reports a broken patch that is not locked, or any patch already
// selected for installation (which the solver classifies as satisfied).
func (s *Selectable) IsNeeded() bool {
	s.check()
	if !s.ident.Kind().IsPseudoInstalled() {
		return false
	}
	return s.fate() == ToInstall || (s.IsBroken() && !s.locked())
}

func (s *Selectable) establishedAs(want ...pool.Establish) bool {
	s.check()
	if !s.ident.Kind().IsPseudoInstalled() {
		return false
	}
	cand := s.candidateObj()
	if cand.IsZero() {
		return false
	}
	got := cand.Status().Establish()
	for _, w := range want {
		if got == w {
			return true
		}
	}
	return false
}

// HasLicenceConfirmed reports whether the candidate's licence was confirmed.
func (s *Selectable) HasLicenceConfirmed() bool {
	s.check()
	cand := s.candidateObj()
	return !cand.IsZero() && cand.Status().LicenceConfirmed()
}

// SetLicenceConfirmed sets the licence bit on every available object.
// Confirming a licence is a user decision; it fails for lower ranks and
// when nothing is available.
func (s *Selectable) SetLicenceConfirmed(on bool, causer pool.Causer) bool {
	s.check()
	if causer < pool.CauserUser || len(s.available) == 0 {
		return false
	}
	for _, it := range s.available {
		it.Status().SetLicenceConfirmed(on)
	}
	return true
}
