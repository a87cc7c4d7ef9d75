package selectable

// Change is a new install or a delete in a pending transaction.
type Change struct {
	// Ident is the identity string.
	Ident string `json:"ident" yaml:"ident"`

	// Edition is the edition that gets installed or deleted.
	Edition string `json:"edition" yaml:"edition"`

	// Causer is who requested the change.
	Causer string `json:"causer" yaml:"causer"`
}

// Replacement is an installed object replaced by another edition.
type Replacement struct {
	Ident      string `json:"ident" yaml:"ident"`
	OldEdition string `json:"old_edition" yaml:"old_edition"`
	NewEdition string `json:"new_edition" yaml:"new_edition"`
	Causer     string `json:"causer" yaml:"causer"`
}

// Changes describes what a commit of the current fates would do.
//
// Example usage:
//
//	c := selectable.PendingChanges(px)
//	if !c.IsEmpty() {
//	    fmt.Printf("%d to install, %d to delete, %d to upgrade\n",
//	        len(c.Installs), len(c.Deletes), len(c.Upgrades))
//	}
type Changes struct {
	// Installs contains identities with nothing installed yet.
	Installs []Change `json:"installs,omitempty" yaml:"installs,omitempty"`

	// Deletes contains installed objects to be removed.
	Deletes []Change `json:"deletes,omitempty" yaml:"deletes,omitempty"`

	// Upgrades contains replacements by a higher edition.
	Upgrades []Replacement `json:"upgrades,omitempty" yaml:"upgrades,omitempty"`

	// Downgrades contains replacements by a lower edition.
	Downgrades []Replacement `json:"downgrades,omitempty" yaml:"downgrades,omitempty"`

	// Reinstalls contains replacements by the same edition.
	Reinstalls []Replacement `json:"reinstalls,omitempty" yaml:"reinstalls,omitempty"`
}

// IsEmpty returns true if nothing would change.
func (c *Changes) IsEmpty() bool {
	return c.TotalChanges() == 0
}

// TotalChanges returns the number of affected identities.
func (c *Changes) TotalChanges() int {
	return len(c.Installs) + len(c.Deletes) + len(c.Upgrades) + len(c.Downgrades) + len(c.Reinstalls)
}

// PendingChanges collects the fates of every Selectable of px. Results are
// ordered by identity, like px.All.
func PendingChanges(px *Proxy) *Changes {
	c := &Changes{}
	for s := range px.All() {
		switch s.Fate() {
		case ToDelete:
			inst := s.InstalledObj()
			c.Deletes = append(c.Deletes, Change{
				Ident:   s.Ident().String(),
				Edition: inst.Edition().String(),
				Causer:  s.ModifiedBy().String(),
			})
		case ToInstall:
			cand := s.CandidateObj()
			if !s.HasInstalledObj() {
				c.Installs = append(c.Installs, Change{
					Ident:   s.Ident().String(),
					Edition: cand.Edition().String(),
					Causer:  s.ModifiedBy().String(),
				})
				continue
			}
			inst := s.InstalledObj()
			r := Replacement{
				Ident:      s.Ident().String(),
				OldEdition: inst.Edition().String(),
				NewEdition: cand.Edition().String(),
				Causer:     s.ModifiedBy().String(),
			}
			switch cmp := cand.Edition().Compare(inst.Edition()); {
			case cmp > 0:
				c.Upgrades = append(c.Upgrades, r)
			case cmp < 0:
				c.Downgrades = append(c.Downgrades, r)
			default:
				c.Reinstalls = append(c.Reinstalls, r)
			}
		}
	}
	return c
}
