package selection

import (
	"cmp"
	"slices"

	"github.com/albertocavalcante/go-selectable/pool"
)

// CompareAvailable orders two available objects. It returns a negative
// number when a is better than b.
func (p Policy) CompareAvailable(a, b pool.Item) int {
	// Higher repository priority first.
	if c := cmp.Compare(b.Repository().Priority(), a.Repository().Priority()); c != 0 {
		return c
	}
	// Higher edition first.
	if c := b.Edition().Compare(a.Edition()); c != 0 {
		return c
	}
	// Preferred arch first.
	if c := cmp.Compare(b.Arch().Score(p.Arch), a.Arch().Score(p.Arch)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Repository().Order(), b.Repository().Order()); c != 0 {
		return c
	}
	return cmp.Compare(a.ID(), b.ID())
}

// CompareInstalled orders two installed objects, newest install first.
func CompareInstalled(a, b pool.Item) int {
	if c := b.InstallTime().Compare(a.InstallTime()); c != 0 {
		return c
	}
	return cmp.Compare(a.ID(), b.ID())
}

// SortAvailable sorts items best first in place.
func (p Policy) SortAvailable(items []pool.Item) {
	slices.SortStableFunc(items, p.CompareAvailable)
}

// SortInstalled sorts items newest install first in place.
func SortInstalled(items []pool.Item) {
	slices.SortStableFunc(items, CompareInstalled)
}

// BestAvailable returns the best of items, or the zero Item if items is
// empty. items is not modified.
func (p Policy) BestAvailable(items []pool.Item) pool.Item {
	if len(items) == 0 {
		return pool.Item{}
	}
	return slices.MinFunc(items, p.CompareAvailable)
}

// LatestInstalled returns the most recently installed of items, or the zero
// Item if items is empty.
func LatestInstalled(items []pool.Item) pool.Item {
	if len(items) == 0 {
		return pool.Item{}
	}
	return slices.MinFunc(items, CompareInstalled)
}

// CandidateFrom returns the best of items provided by repo, or the zero
// Item if repo provides none of them.
func (p Policy) CandidateFrom(items []pool.Item, repo *pool.Repository) pool.Item {
	var best pool.Item
	for _, it := range items {
		if it.Repository() != repo {
			continue
		}
		if best.IsZero() || p.CompareAvailable(it, best) < 0 {
			best = it
		}
	}
	return best
}

// UpdateCandidate returns the best of available that may replace installed.
//
// With nothing installed this is simply the best available object. With
// something installed it is the zero Item when the best available object is
// already installed (content identical), or when every available object
// violates update policy (see [Policy.Updates]).
func (p Policy) UpdateCandidate(installed pool.Item, available []pool.Item) pool.Item {
	if len(available) == 0 {
		return pool.Item{}
	}
	sorted := slices.Clone(available)
	p.SortAvailable(sorted)
	if installed.IsZero() {
		return sorted[0]
	}
	if sorted[0].Identical(installed) {
		return pool.Item{}
	}
	for _, it := range sorted {
		if p.Updates(installed, it) {
			return it
		}
	}
	return pool.Item{}
}

// Updates reports whether cand is an acceptable update for installed.
func (p Policy) Updates(installed, cand pool.Item) bool {
	if cand.IsZero() || installed.IsZero() || cand.Identical(installed) {
		return false
	}
	if !p.AllowDowngrade && cand.Edition().Compare(installed.Edition()) <= 0 {
		return false
	}
	if !p.AllowVendorChange && !p.VendorEquivalent(cand.Vendor(), installed.Vendor()) {
		return false
	}
	if !p.AllowArchChange && cand.Arch() != installed.Arch() &&
		!cand.Arch().IsNoarch() && !installed.Arch().IsNoarch() {
		return false
	}
	return true
}
