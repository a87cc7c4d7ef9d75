package manifest

import (
	"time"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/selection/edition"
)

// validate checks every declaration and normalizes object kinds.
func (p *parser) validate(m *Manifest) {
	repos := make(map[string]bool, len(m.Repositories))
	for _, repo := range m.Repositories {
		switch {
		case repo.Name == "":
			p.addError(repo.Pos, "repository: missing required name")
		case repo.Name == pool.SystemRepositoryName:
			p.addError(repo.Pos, "repository: %s is reserved for installed objects", repo.Name)
		case repos[repo.Name]:
			p.addError(repo.Pos, "repository: duplicate name %q", repo.Name)
		}
		repos[repo.Name] = true
	}

	for i := range m.Objects {
		obj := &m.Objects[i]
		if obj.Kind == "" {
			obj.Kind = label.KindPackage
		}
		kind, err := label.ParseKind(string(obj.Kind))
		if err != nil {
			p.addErrorWrap(obj.Pos, err, "object %s: %v", obj.Name, err)
			continue
		}
		obj.Kind = kind
		if _, err := label.NewIdent(kind, obj.Name); err != nil {
			p.addErrorWrap(obj.Pos, err, "%s: %v", kind, err)
			continue
		}
		if _, err := edition.Parse(obj.Edition); err != nil {
			p.addErrorWrap(obj.Pos, err, "%s %s: %v", kind, obj.Name, err)
		}
		if obj.Arch != "" {
			if _, err := label.NewArch(obj.Arch); err != nil {
				p.addErrorWrap(obj.Pos, err, "%s %s: %v", kind, obj.Name, err)
			}
		}
		if _, ok := pool.ParseEstablish(obj.Establish); !ok {
			p.addError(obj.Pos, "%s %s: unknown establish value %q", kind, obj.Name, obj.Establish)
		} else if obj.Establish != "" && !kind.IsPseudoInstalled() {
			p.addWarning(obj.Pos, "%s %s: establish is only meaningful for patches", kind, obj.Name)
		}
		switch {
		case obj.Installed && obj.Repo != "":
			p.addWarning(obj.Pos, "%s %s: repo is ignored for installed objects", kind, obj.Name)
		case !obj.Installed && obj.Repo == "":
			p.addError(obj.Pos, "%s %s: available object needs a repo", kind, obj.Name)
		case !obj.Installed && !repos[obj.Repo]:
			p.addError(obj.Pos, "%s %s: undeclared repository %q", kind, obj.Name, obj.Repo)
		}
	}
}

// Load adds the repositories and objects of m to p. Locked objects are
// locked on behalf of the user.
func (m *Manifest) Load(p *pool.Pool) error {
	for _, r := range m.Repositories {
		if _, err := p.AddRepository(r.Name, r.Priority); err != nil {
			return &ParseError{Pos: r.Pos, Message: err.Error(), Wrapped: err}
		}
	}
	for _, obj := range m.Objects {
		if err := m.loadObject(p, obj); err != nil {
			return &ParseError{Pos: obj.Pos, Message: err.Error(), Wrapped: err}
		}
	}
	return nil
}

func (m *Manifest) loadObject(p *pool.Pool, obj Object) error {
	ed, err := edition.Parse(obj.Edition)
	if err != nil {
		return err
	}
	var arch label.Arch
	if obj.Arch != "" {
		if arch, err = label.NewArch(obj.Arch); err != nil {
			return err
		}
	}
	s := pool.Solvable{
		Kind:        obj.Kind,
		Name:        obj.Name,
		Edition:     ed,
		Arch:        arch,
		Vendor:      obj.Vendor,
		BuildTime:   unix(obj.BuildTime),
		InstallTime: unix(obj.InstallTime),
		Installed:   obj.Installed,
		Category:    obj.Category,
	}
	if !obj.Installed {
		s.Repository = p.Repository(obj.Repo)
	}
	it, err := p.Add(s)
	if err != nil {
		return err
	}
	if est, ok := pool.ParseEstablish(obj.Establish); ok {
		it.Status().SetEstablish(est)
	}
	if obj.Locked {
		it.Status().SetLock(true, pool.CauserUser)
	}
	return nil
}

func unix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

// LoadFile parses filename and loads it into a new pool. The parse result
// is returned even when loading fails so that callers can report warnings.
func LoadFile(filename string) (*pool.Pool, *ParseResult, error) {
	res, err := ParseFile(filename)
	if err != nil {
		return nil, nil, err
	}
	if res.HasErrors() {
		return nil, res, res.Err()
	}
	p := pool.New()
	if err := res.Manifest.Load(p); err != nil {
		return nil, res, err
	}
	return p, res, nil
}
