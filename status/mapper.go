package status

// Fate mirrors a Selectable's fate without importing it.
type Fate int

// Fate values, numerically identical to the Selectable's.
const (
	FateDelete     Fate = -1
	FateUnmodified Fate = 0
	FateInstall    Fate = 1
)

// Inputs is everything Derive needs to know about a Selectable.
type Inputs struct {
	HasInstalled bool
	HasCandidate bool
	Fate         Fate
	// ByUser reports whether the pending transaction was requested by the user.
	ByUser bool
	// Locked reports whether the Selectable is locked in its current state.
	Locked bool
	// PseudoInstalled reports a kind classified by the solver instead of
	// being installed (patches).
	PseudoInstalled bool
	// Satisfied reports a pseudo-installed candidate the solver classified
	// as satisfied.
	Satisfied bool
}

// Derive computes the Status for in.
func Derive(in Inputs) Status {
	switch {
	case in.Fate == FateInstall && in.HasCandidate:
		if in.ByUser {
			return pick(in.HasInstalled, Update, Install)
		}
		return pick(in.HasInstalled, AutoUpdate, AutoInstall)
	case in.Fate == FateDelete && in.HasInstalled:
		return pick(in.ByUser, Del, AutoDel)
	case in.Locked:
		return pick(in.HasInstalled, Protected, Taboo)
	case in.HasInstalled:
		return KeepInstalled
	case in.PseudoInstalled && in.Satisfied:
		return KeepInstalled
	}
	return NoInst
}

func pick(cond bool, yes, no Status) Status {
	if cond {
		return yes
	}
	return no
}

// Plan is the (fate, lock) pair that realizes a Status.
type Plan struct {
	Fate Fate
	Lock bool
}

// Realize returns the Plan for target given which objects exist. It returns
// false if target cannot be reached: automatic states are solver level only,
// and every other state needs the right objects to be present.
func Realize(target Status, hasInstalled, hasCandidate bool) (Plan, bool) {
	switch target {
	case Protected:
		return Plan{Fate: FateUnmodified, Lock: true}, hasInstalled
	case Taboo:
		return Plan{Fate: FateUnmodified, Lock: true}, !hasInstalled && hasCandidate
	case Del:
		return Plan{Fate: FateDelete}, hasInstalled
	case Install:
		return Plan{Fate: FateInstall}, !hasInstalled && hasCandidate
	case Update:
		return Plan{Fate: FateInstall}, hasInstalled && hasCandidate
	case KeepInstalled:
		return Plan{Fate: FateUnmodified}, hasInstalled
	case NoInst:
		return Plan{Fate: FateUnmodified}, !hasInstalled
	}
	return Plan{}, false
}

// OnSystem reports whether a Selectable in state in ends up on the system
// after commit.
func OnSystem(in Inputs) bool {
	return (in.HasInstalled && in.Fate != FateDelete) ||
		(in.HasCandidate && in.Fate == FateInstall)
}
