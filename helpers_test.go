package selectable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/selection/edition"
)

// fixture is a pool with two repositories and helpers to populate it.
type fixture struct {
	t    *testing.T
	pool *pool.Pool
	oss  *pool.Repository
	upd  *pool.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	p := pool.New()
	oss, err := p.AddRepository("oss", 99)
	require.NoError(t, err)
	upd, err := p.AddRepository("update", 100)
	require.NoError(t, err)
	return &fixture{t: t, pool: p, oss: oss, upd: upd}
}

type spec struct {
	kind        label.Kind
	edition     string
	arch        string
	vendor      string
	buildTime   int64
	installTime int64
	repo        *pool.Repository
}

func (f *fixture) add(name string, installed bool, sp spec) pool.Item {
	f.t.Helper()
	if sp.kind == "" {
		sp.kind = label.KindPackage
	}
	if sp.arch == "" {
		sp.arch = "x86_64"
	}
	if sp.vendor == "" {
		sp.vendor = "openSUSE"
	}
	if !installed && sp.repo == nil {
		sp.repo = f.oss
	}
	it, err := f.pool.Add(pool.Solvable{
		Kind:        sp.kind,
		Name:        name,
		Edition:     edition.MustParse(sp.edition),
		Arch:        label.MustArch(sp.arch),
		Vendor:      sp.vendor,
		BuildTime:   time.Unix(sp.buildTime, 0),
		InstallTime: time.Unix(sp.installTime, 0),
		Installed:   installed,
		Repository:  sp.repo,
	})
	require.NoError(f.t, err)
	return it
}

func (f *fixture) installed(name, ed string) pool.Item {
	f.t.Helper()
	return f.add(name, true, spec{edition: ed})
}

func (f *fixture) available(name, ed string) pool.Item {
	f.t.Helper()
	return f.add(name, false, spec{edition: ed})
}

func (f *fixture) proxy(opts ...Option) *Proxy {
	f.t.Helper()
	px, err := NewProxy(f.pool, append([]Option{WithArch(label.MustArch("x86_64"))}, opts...)...)
	require.NoError(f.t, err)
	return px
}

func (f *fixture) get(px *Proxy, name string) *Selectable {
	f.t.Helper()
	s := px.Get(label.MustIdent(label.KindPackage, name))
	require.NotNil(f.t, s, "no selectable for %s", name)
	return s
}

// fateInvariants checks the properties that must hold for every Selectable.
func fateInvariants(t *testing.T, s *Selectable) {
	t.Helper()
	n := 0
	for _, b := range []bool{s.Unmodified(), s.ToDelete(), s.ToInstall()} {
		if b {
			n++
		}
	}
	require.Equal(t, 1, n, "exactly one fate must hold")
	require.Equal(t, !s.Unmodified(), s.ToModify())
	if s.ToDelete() {
		require.True(t, s.HasInstalledObj())
	}
	if s.ToInstall() {
		require.True(t, s.HasCandidateObj())
	}
	want := (s.HasInstalledObj() && !s.ToDelete()) || (s.HasCandidateObj() && s.ToInstall())
	require.Equal(t, want, s.OnSystem())
	require.Equal(t, !s.OnSystem(), s.OffSystem())
}
