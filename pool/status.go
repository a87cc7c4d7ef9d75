package pool

// Transact is the pending transaction of a single object.
type Transact int

// Transact values.
const (
	TransactNone Transact = iota
	TransactInstall
	TransactDelete
)

func (t Transact) String() string {
	switch t {
	case TransactInstall:
		return "install"
	case TransactDelete:
		return "delete"
	default:
		return "none"
	}
}

// Establish is the solver's classification of a pseudo-installed object
// (for example a patch).
type Establish int

// Establish values.
const (
	EstablishUndetermined Establish = iota
	EstablishNonRelevant
	EstablishSatisfied
	EstablishBroken
)

var establishNames = []string{"undetermined", "non_relevant", "satisfied", "broken"}

func (e Establish) String() string {
	if int(e) >= 0 && int(e) < len(establishNames) {
		return establishNames[e]
	}
	return "undetermined"
}

// ParseEstablish returns the Establish value named by s. The empty string
// is EstablishUndetermined.
func ParseEstablish(s string) (Establish, bool) {
	if s == "" {
		return EstablishUndetermined, true
	}
	for i, name := range establishNames {
		if name == s {
			return Establish(i), true
		}
	}
	return EstablishUndetermined, false
}

// Status is the mutable per-object state. The zero Status is "keep, set by
// the solver, unlocked".
//
// Status does not check permissions; that is the job of the Selectable that
// groups the object.
type Status struct {
	installed bool
	transact  Transact
	causer    Causer
	locked    bool
	establish Establish
	licence   bool
}

// Transact returns the pending transaction.
func (s *Status) Transact() Transact { return s.transact }

// Transacts reports whether the object is to be installed or deleted.
func (s *Status) Transacts() bool { return s.transact != TransactNone }

// Causer returns who made the last change.
func (s *Status) Causer() Causer { return s.causer }

// ByUser reports whether the last change was made by the user.
func (s *Status) ByUser() bool { return s.causer == CauserUser }

// Locked reports whether the object is locked in its current state.
func (s *Status) Locked() bool { return s.locked }

// Establish returns the solver classification.
func (s *Status) Establish() Establish { return s.establish }

// LicenceConfirmed reports whether the user confirmed the licence.
func (s *Status) LicenceConfirmed() bool { return s.licence }

// SetTransact marks the object to transact (install if not installed,
// delete if installed) or clears the mark, and records causer.
func (s *Status) SetTransact(on bool, causer Causer) {
	switch {
	case !on:
		s.transact = TransactNone
	case s.installed:
		s.transact = TransactDelete
	default:
		s.transact = TransactInstall
	}
	s.causer = causer
}

// SetCauser records causer without changing anything else.
func (s *Status) SetCauser(causer Causer) { s.causer = causer }

// SetLock locks or unlocks the object and records causer. Locking clears any
// pending transaction.
func (s *Status) SetLock(on bool, causer Causer) {
	s.locked = on
	if on {
		s.transact = TransactNone
	}
	s.causer = causer
}

// SetEstablish records the solver classification.
func (s *Status) SetEstablish(e Establish) { s.establish = e }

// SetLicenceConfirmed sets the licence bit.
func (s *Status) SetLicenceConfirmed(on bool) { s.licence = on }
