package pool

import (
	"fmt"
	"strings"
)

// Causer ranks the authority behind a status change. A change requested with
// a lower rank must not override a decision made with a higher one.
type Causer int

// Causer ranks, lowest first.
const (
	// CauserSolver is used by the dependency resolver.
	CauserSolver Causer = iota
	// CauserApplLow is used by applications for soft, overridable decisions.
	CauserApplLow
	// CauserApplHigh is used by applications for firm decisions.
	CauserApplHigh
	// CauserUser is used for explicit user requests.
	CauserUser
)

var causerNames = map[Causer]string{
	CauserSolver:   "solver",
	CauserApplLow:  "appl_low",
	CauserApplHigh: "appl_high",
	CauserUser:     "user",
}

// String returns the causer name.
func (c Causer) String() string {
	if name, ok := causerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("causer(%d)", int(c))
}

// ParseCauser returns the Causer named by s.
func ParseCauser(s string) (Causer, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range causerNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown causer %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Causer) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Causer) UnmarshalText(text []byte) error {
	parsed, err := ParseCauser(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
