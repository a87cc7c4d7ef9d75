package selectable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
)

// Proxy groups the objects of a Pool by identity and hands out one
// Selectable per identity.
//
// The Proxy follows its pool: after objects are added or removed the next
// access regroups them, growing or shrinking existing Selectables and
// dropping those left without objects. After a pool Reload every Selectable
// handed out before is invalid and a fresh set is built.
type Proxy struct {
	pool       *pool.Pool
	cfg        *config
	generation uint64
	serial     uint64
	byIdent    map[label.Ident]*Selectable
	order      []label.Ident
	saved      *savedState
}

// NewProxy builds the Selectables for every identity in p.
func NewProxy(p *pool.Pool, opts ...Option) (*Proxy, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	px := &Proxy{pool: p, cfg: cfg}
	px.rebuild()
	return px, nil
}

// Pool returns the underlying pool.
func (px *Proxy) Pool() *pool.Pool { return px.pool }

// Get returns the Selectable for id, or nil if the pool has no object
// with that identity.
func (px *Proxy) Get(id label.Ident) *Selectable {
	px.sync()
	return px.byIdent[id]
}

// Lookup is like Get but reports a missing identity as an error wrapping
// ErrUnknownIdent.
func (px *Proxy) Lookup(id label.Ident) (*Selectable, error) {
	if s := px.Get(id); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownIdent, id)
}

// Len returns the number of Selectables.
func (px *Proxy) Len() int {
	px.sync()
	return len(px.order)
}

// All iterates over all Selectables ordered by identity.
func (px *Proxy) All() iter.Seq[*Selectable] {
	return func(yield func(*Selectable) bool) {
		px.sync()
		for _, id := range slices.Clone(px.order) {
			if !yield(px.byIdent[id]) {
				return
			}
		}
	}
}

// ByKind iterates over the Selectables of one kind.
func (px *Proxy) ByKind(kind label.Kind) iter.Seq[*Selectable] {
	return func(yield func(*Selectable) bool) {
		for s := range px.All() {
			if s.ident.Kind() == kind && !yield(s) {
				return
			}
		}
	}
}

// sync brings the Proxy in line with its pool.
func (px *Proxy) sync() {
	switch {
	case px.generation != px.pool.Generation():
		px.rebuild()
	case px.serial != px.pool.Serial():
		px.regroup()
	}
}

// rebuild discards every Selectable and builds new ones.
func (px *Proxy) rebuild() {
	for _, s := range px.byIdent {
		s.dropped = true
	}
	px.byIdent = make(map[label.Ident]*Selectable)
	px.order = nil
	px.saved = nil
	px.generation = px.pool.Generation()
	px.regroup()
	px.cfg.log().Debug("rebuilt selectables",
		"generation", px.generation,
		"selectables", len(px.order))
}

// regroup reconciles the Selectables with the current pool contents.
func (px *Proxy) regroup() {
	idents := px.pool.Idents()
	seen := make(map[label.Ident]bool, len(idents))
	for _, id := range idents {
		seen[id] = true
		installed, available := px.pool.Partition(id)
		if s, ok := px.byIdent[id]; ok {
			s.reset(installed, available)
			continue
		}
		px.byIdent[id] = newSelectable(px, id, installed, available)
	}
	for id, s := range px.byIdent {
		if !seen[id] {
			s.dropped = true
			delete(px.byIdent, id)
			px.cfg.log().Debug("dropped selectable", "ident", id.String())
		}
	}
	px.order = idents
	px.serial = px.pool.Serial()
}
