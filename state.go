package selectable

import (
	"maps"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
)

type savedState struct {
	serial     uint64
	statuses   map[pool.Item]pool.Status
	candidates map[label.Ident]pool.Item
}

// SaveState remembers the status of every object and every explicit
// candidate choice, so that RestoreState can undo later changes.
func (px *Proxy) SaveState() {
	px.sync()
	st := &savedState{
		serial:     px.pool.Serial(),
		statuses:   make(map[pool.Item]pool.Status, px.pool.Len()),
		candidates: make(map[label.Ident]pool.Item),
	}
	for _, it := range px.pool.Items() {
		st.statuses[it] = *it.Status()
	}
	for id, s := range px.byIdent {
		if !s.candidate.IsZero() {
			st.candidates[id] = s.candidate
		}
	}
	px.saved = st
}

// RestoreState brings back the state remembered by SaveState. It returns
// false if there is nothing to restore: no state was saved, or the pool
// contents changed since.
func (px *Proxy) RestoreState() bool {
	px.sync()
	st := px.saved
	if st == nil || st.serial != px.pool.Serial() {
		return false
	}
	for it, saved := range st.statuses {
		*it.Status() = saved
	}
	for id, s := range px.byIdent {
		s.candidate = st.candidates[id]
	}
	px.cfg.log().Debug("restored state", "objects", len(st.statuses))
	return true
}

// DiffState reports whether anything changed since SaveState. Without a
// saved state, or after the pool contents changed, it reports true.
func (px *Proxy) DiffState() bool {
	px.sync()
	st := px.saved
	if st == nil || st.serial != px.pool.Serial() {
		return true
	}
	current := make(map[label.Ident]pool.Item)
	for id, s := range px.byIdent {
		if !s.candidate.IsZero() {
			current[id] = s.candidate
		}
	}
	if !maps.Equal(current, st.candidates) {
		return true
	}
	for it, saved := range st.statuses {
		if *it.Status() != saved {
			return true
		}
	}
	return false
}
