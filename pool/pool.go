package pool

import (
	"errors"
	"fmt"
	"slices"

	"github.com/albertocavalcante/go-selectable/label"
)

// Sentinel errors returned by Pool.
var (
	// ErrDuplicateRepository indicates a repository name is already in use.
	ErrDuplicateRepository = errors.New("duplicate repository")

	// ErrForeignRepository indicates a repository that does not belong to the pool.
	ErrForeignRepository = errors.New("repository does not belong to this pool")

	// ErrNoRepository indicates an available object without a repository.
	ErrNoRepository = errors.New("available object needs a repository")
)

// Pool owns all known objects. It is not safe for concurrent use.
type Pool struct {
	generation uint64
	serial     uint64
	nextID     int
	system     *Repository
	repos      []*Repository
	entries    []*entry
	byIdent    map[label.Ident][]*entry
}

// New returns an empty pool containing only the system repository.
func New() *Pool {
	p := &Pool{generation: 1}
	p.reset()
	return p
}

func (p *Pool) reset() {
	p.system = &Repository{name: SystemRepositoryName, order: 0}
	p.repos = []*Repository{p.system}
	p.entries = nil
	p.byIdent = make(map[label.Ident][]*entry)
}

// Generation identifies the current load of the pool. It changes on Reload.
func (p *Pool) Generation() uint64 { return p.generation }

// Serial changes whenever objects are added or removed.
func (p *Pool) Serial() uint64 { return p.serial }

// Reload discards all repositories and objects and starts a new generation.
func (p *Pool) Reload() {
	p.generation++
	p.serial++
	p.reset()
}

// SystemRepository returns the repository of installed objects.
func (p *Pool) SystemRepository() *Repository { return p.system }

// AddRepository registers a repository. Names must be unique.
func (p *Pool) AddRepository(name string, priority int) (*Repository, error) {
	if name == "" {
		return nil, errors.New("repository name cannot be empty")
	}
	if p.Repository(name) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRepository, name)
	}
	r := &Repository{name: name, priority: priority, order: len(p.repos)}
	p.repos = append(p.repos, r)
	return r, nil
}

// Repository returns the repository called name, or nil.
func (p *Pool) Repository(name string) *Repository {
	for _, r := range p.repos {
		if r.name == name {
			return r
		}
	}
	return nil
}

// Repositories returns all repositories in insertion order, system first.
func (p *Pool) Repositories() []*Repository {
	return slices.Clone(p.repos)
}

// Add stores a new object and returns its handle.
func (p *Pool) Add(s Solvable) (Item, error) {
	id, err := label.NewIdent(s.Kind, s.Name)
	if err != nil {
		return Item{}, err
	}
	s.Kind = id.Kind()
	if s.Arch.IsEmpty() {
		s.Arch = label.Noarch
	}
	if s.Installed {
		s.Repository = p.system
	} else {
		if s.Repository == nil {
			return Item{}, fmt.Errorf("%w: %s", ErrNoRepository, id)
		}
		if !slices.Contains(p.repos, s.Repository) || s.Repository.IsSystem() {
			return Item{}, fmt.Errorf("%w: %s", ErrForeignRepository, s.Repository.Name())
		}
	}

	p.nextID++
	e := &entry{id: p.nextID, ident: id, solv: s}
	e.status.installed = s.Installed
	p.entries = append(p.entries, e)
	p.byIdent[id] = append(p.byIdent[id], e)
	p.serial++
	return Item{e: e}, nil
}

// Remove drops an object from the pool. It reports whether it was present.
func (p *Pool) Remove(it Item) bool {
	if it.e == nil {
		return false
	}
	i := slices.Index(p.entries, it.e)
	if i < 0 {
		return false
	}
	p.entries = slices.Delete(p.entries, i, i+1)

	group := p.byIdent[it.e.ident]
	if j := slices.Index(group, it.e); j >= 0 {
		group = slices.Delete(group, j, j+1)
	}
	if len(group) == 0 {
		delete(p.byIdent, it.e.ident)
	} else {
		p.byIdent[it.e.ident] = group
	}
	p.serial++
	return true
}

// Contains reports whether it belongs to the current pool contents.
func (p *Pool) Contains(it Item) bool {
	return it.e != nil && slices.Contains(p.byIdent[it.e.ident], it.e)
}

// Len returns the number of objects.
func (p *Pool) Len() int { return len(p.entries) }

// Items returns all objects in insertion order.
func (p *Pool) Items() []Item {
	out := make([]Item, len(p.entries))
	for i, e := range p.entries {
		out[i] = Item{e: e}
	}
	return out
}

// ByIdent returns all objects for id, installed and available, in
// insertion order.
func (p *Pool) ByIdent(id label.Ident) []Item {
	group := p.byIdent[id]
	out := make([]Item, len(group))
	for i, e := range group {
		out[i] = Item{e: e}
	}
	return out
}

// Partition splits the objects for id into installed and available ones.
func (p *Pool) Partition(id label.Ident) (installed, available []Item) {
	for _, e := range p.byIdent[id] {
		if e.solv.Installed {
			installed = append(installed, Item{e: e})
		} else {
			available = append(available, Item{e: e})
		}
	}
	return installed, available
}

// Idents returns every identity with at least one object, sorted.
func (p *Pool) Idents() []label.Ident {
	out := make([]label.Ident, 0, len(p.byIdent))
	for id := range p.byIdent {
		out = append(out, id)
	}
	slices.SortFunc(out, label.Ident.Compare)
	return out
}
