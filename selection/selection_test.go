package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/selection/edition"
)

type obj struct {
	edition     string
	arch        string
	vendor      string
	repo        *pool.Repository
	installed   bool
	installTime int64
	buildTime   int64
}

func add(t *testing.T, p *pool.Pool, o obj) pool.Item {
	t.Helper()
	if o.arch == "" {
		o.arch = "x86_64"
	}
	if o.vendor == "" {
		o.vendor = "openSUSE"
	}
	it, err := p.Add(pool.Solvable{
		Kind:        label.KindPackage,
		Name:        "foo",
		Edition:     edition.MustParse(o.edition),
		Arch:        label.MustArch(o.arch),
		Vendor:      o.vendor,
		BuildTime:   time.Unix(o.buildTime, 0),
		InstallTime: time.Unix(o.installTime, 0),
		Installed:   o.installed,
		Repository:  o.repo,
	})
	require.NoError(t, err)
	return it
}

func newRepo(t *testing.T, p *pool.Pool, name string, prio int) *pool.Repository {
	t.Helper()
	r, err := p.AddRepository(name, prio)
	require.NoError(t, err)
	return r
}

func x86Policy() Policy {
	return Policy{Arch: label.MustArch("x86_64")}
}

func TestBestAvailablePrefersRepositoryPriority(t *testing.T) {
	p := pool.New()
	low := newRepo(t, p, "low", 5)
	high := newRepo(t, p, "high", 10)
	a := add(t, p, obj{edition: "1.0", repo: low})
	b := add(t, p, obj{edition: "1.0", repo: high})

	got := x86Policy().BestAvailable([]pool.Item{a, b})
	assert.Equal(t, b, got)
}

func TestBestAvailablePrefersHigherEdition(t *testing.T) {
	p := pool.New()
	r := newRepo(t, p, "oss", 99)
	a := add(t, p, obj{edition: "2.0", repo: r})
	b := add(t, p, obj{edition: "1.0", repo: r})

	assert.Equal(t, a, x86Policy().BestAvailable([]pool.Item{b, a}))
}

func TestBestAvailablePriorityBeatsEdition(t *testing.T) {
	p := pool.New()
	low := newRepo(t, p, "low", 1)
	high := newRepo(t, p, "high", 2)
	newer := add(t, p, obj{edition: "3.0", repo: low})
	older := add(t, p, obj{edition: "1.0", repo: high})

	assert.Equal(t, older, x86Policy().BestAvailable([]pool.Item{newer, older}))
}

func TestBestAvailableArchPreference(t *testing.T) {
	p := pool.New()
	r := newRepo(t, p, "oss", 99)
	noarch := add(t, p, obj{edition: "1.0", arch: "noarch", repo: r})
	i586 := add(t, p, obj{edition: "1.0", arch: "i586", repo: r})
	native := add(t, p, obj{edition: "1.0", arch: "x86_64", repo: r})
	foreign := add(t, p, obj{edition: "1.0", arch: "aarch64", repo: r})

	items := []pool.Item{foreign, noarch, i586, native}
	x86Policy().SortAvailable(items)
	assert.Equal(t, []pool.Item{native, i586, noarch, foreign}, items)
}

func TestBestAvailableDeterministicTieBreak(t *testing.T) {
	p := pool.New()
	first := newRepo(t, p, "first", 10)
	second := newRepo(t, p, "second", 10)
	b := add(t, p, obj{edition: "1.0", repo: second})
	a := add(t, p, obj{edition: "1.0", repo: first})
	a2 := add(t, p, obj{edition: "1.0", repo: first})

	items := []pool.Item{b, a2, a}
	x86Policy().SortAvailable(items)
	assert.Equal(t, []pool.Item{a, a2, b}, items)
}

func TestBestAvailableEmpty(t *testing.T) {
	assert.True(t, x86Policy().BestAvailable(nil).IsZero())
	assert.True(t, LatestInstalled(nil).IsZero())
}

func TestLatestInstalled(t *testing.T) {
	p := pool.New()
	x := add(t, p, obj{edition: "1.0", installed: true, installTime: 100})
	y := add(t, p, obj{edition: "1.1", installed: true, installTime: 200})
	z := add(t, p, obj{edition: "1.2", installed: true, installTime: 200})

	assert.Equal(t, y, LatestInstalled([]pool.Item{x, z, y}))

	items := []pool.Item{x, z, y}
	SortInstalled(items)
	assert.Equal(t, []pool.Item{y, z, x}, items)
}

func TestCandidateFrom(t *testing.T) {
	p := pool.New()
	oss := newRepo(t, p, "oss", 99)
	upd := newRepo(t, p, "update", 100)
	other := newRepo(t, p, "other", 1)
	a := add(t, p, obj{edition: "1.0", repo: oss})
	b := add(t, p, obj{edition: "1.1", repo: oss})
	c := add(t, p, obj{edition: "1.2", repo: upd})
	items := []pool.Item{a, b, c}

	pol := x86Policy()
	assert.Equal(t, b, pol.CandidateFrom(items, oss))
	assert.Equal(t, c, pol.CandidateFrom(items, upd))
	assert.True(t, pol.CandidateFrom(items, other).IsZero())
}

func TestUpdateCandidate(t *testing.T) {
	p := pool.New()
	r := newRepo(t, p, "oss", 99)
	inst := add(t, p, obj{edition: "1.0", installed: true, buildTime: 10})

	tests := []struct {
		name      string
		policy    Policy
		available []obj
		want      int // index into available, -1 for none
	}{
		{
			name:      "newer edition",
			policy:    x86Policy(),
			available: []obj{{edition: "1.1", repo: r}},
			want:      0,
		},
		{
			name:      "best is identical",
			policy:    x86Policy(),
			available: []obj{{edition: "1.0", repo: r, buildTime: 10}, {edition: "0.9", repo: r}},
			want:      -1,
		},
		{
			name:      "downgrade rejected",
			policy:    x86Policy(),
			available: []obj{{edition: "0.9", repo: r}},
			want:      -1,
		},
		{
			name:      "downgrade allowed",
			policy:    Policy{Arch: label.MustArch("x86_64"), AllowDowngrade: true},
			available: []obj{{edition: "0.9", repo: r}},
			want:      0,
		},
		{
			name:      "vendor change rejected falls back",
			policy:    x86Policy(),
			available: []obj{{edition: "2.0", vendor: "Packman", repo: r}, {edition: "1.5", repo: r}},
			want:      1,
		},
		{
			name:      "vendor change allowed",
			policy:    Policy{Arch: label.MustArch("x86_64"), AllowVendorChange: true},
			available: []obj{{edition: "2.0", vendor: "Packman", repo: r}},
			want:      0,
		},
		{
			name: "equivalent vendor",
			policy: Policy{
				Arch:          label.MustArch("x86_64"),
				VendorClasses: [][]string{{"openSUSE", "SUSE LLC"}},
			},
			available: []obj{{edition: "2.0", vendor: "SUSE LLC <https://www.suse.com/>", repo: r}},
			want:      0,
		},
		{
			name:      "arch change rejected",
			policy:    x86Policy(),
			available: []obj{{edition: "2.0", arch: "i686", repo: r}},
			want:      -1,
		},
		{
			name:      "noarch is not an arch change",
			policy:    x86Policy(),
			available: []obj{{edition: "2.0", arch: "noarch", repo: r}},
			want:      0,
		},
		{
			name:      "no available",
			policy:    x86Policy(),
			available: nil,
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []pool.Item
			for _, o := range tt.available {
				items = append(items, add(t, p, o))
			}
			got := tt.policy.UpdateCandidate(inst, items)
			if tt.want < 0 {
				assert.True(t, got.IsZero(), "got %s", got)
				return
			}
			assert.Equal(t, items[tt.want], got)
		})
	}
}

func TestUpdateCandidateNothingInstalled(t *testing.T) {
	p := pool.New()
	r := newRepo(t, p, "oss", 99)
	a := add(t, p, obj{edition: "1.0", repo: r})
	b := add(t, p, obj{edition: "2.0", repo: r})

	assert.Equal(t, b, x86Policy().UpdateCandidate(pool.Item{}, []pool.Item{a, b}))
}

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, x86Policy().Validate())
	assert.NoError(t, DefaultPolicy().Validate())

	var perr *PolicyError
	require.ErrorAs(t, Policy{}.Validate(), &perr)
	assert.Equal(t, "NO_ARCH", perr.Code)

	require.ErrorAs(t, Policy{Arch: label.Noarch}.Validate(), &perr)
	assert.Equal(t, "NOARCH_SYSTEM", perr.Code)

	err := Policy{Arch: label.MustArch("x86_64"), VendorClasses: [][]string{{"suse"}}}.Validate()
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "VENDOR_CLASS", perr.Code)
}

func TestVendorEquivalent(t *testing.T) {
	pol := Policy{VendorClasses: [][]string{{"openSUSE", "SUSE"}}}

	assert.True(t, pol.VendorEquivalent("openSUSE", "OPENSUSE"))
	assert.True(t, pol.VendorEquivalent("openSUSE Build Service", "SUSE LLC"))
	assert.False(t, pol.VendorEquivalent("openSUSE", "Packman"))
	assert.False(t, Policy{}.VendorEquivalent("a", "b"))
}
