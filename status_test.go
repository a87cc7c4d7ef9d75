package selectable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/status"
)

func TestDefaultStatus(t *testing.T) {
	f := newFixture(t)
	f.installed("inst", "1.0")
	f.available("avail", "1.0")
	px := f.proxy()

	assert.Equal(t, status.KeepInstalled, f.get(px, "inst").Status())
	assert.Equal(t, status.NoInst, f.get(px, "avail").Status())
}

func TestSetStatusRoundTrip(t *testing.T) {
	tests := []struct {
		target    status.Status
		installed bool
		available bool
	}{
		{status.NoInst, false, true},
		{status.KeepInstalled, true, true},
		{status.KeepInstalled, true, false},
		{status.Install, false, true},
		{status.Update, true, true},
		{status.Del, true, true},
		{status.Del, true, false},
		{status.Protected, true, true},
		{status.Protected, true, false},
		{status.Taboo, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			f := newFixture(t)
			if tt.installed {
				f.installed("foo", "1.0")
			}
			if tt.available {
				f.available("foo", "2.0")
			}
			s := f.get(f.proxy(), "foo")

			require.True(t, s.SetStatus(tt.target, pool.CauserUser))
			assert.Equal(t, tt.target, s.Status())
			fateInvariants(t, s)
		})
	}
}

func TestSetStatusUnreachable(t *testing.T) {
	tests := []struct {
		name      string
		target    status.Status
		installed bool
		available bool
	}{
		{"install over installed", status.Install, true, true},
		{"update without installed", status.Update, false, true},
		{"update without candidate", status.Update, true, false},
		{"delete without installed", status.Del, false, true},
		{"keep without installed", status.KeepInstalled, false, true},
		{"noinst with installed", status.NoInst, true, false},
		{"protected without installed", status.Protected, false, true},
		{"taboo with installed", status.Taboo, true, true},
		{"auto install", status.AutoInstall, false, true},
		{"auto update", status.AutoUpdate, true, true},
		{"auto delete", status.AutoDel, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.installed {
				f.installed("foo", "1.0")
			}
			if tt.available {
				f.available("foo", "2.0")
			}
			s := f.get(f.proxy(), "foo")
			before := s.Status()

			assert.False(t, s.SetStatus(tt.target, pool.CauserUser))
			assert.Equal(t, before, s.Status())
		})
	}
}

func TestAutomaticStatus(t *testing.T) {
	f := newFixture(t)
	f.available("new", "1.0")
	f.installed("old", "1.0")
	f.available("old", "2.0")
	f.installed("gone", "1.0")
	px := f.proxy()

	s := f.get(px, "new")
	require.True(t, s.SetToInstall(pool.CauserSolver))
	assert.Equal(t, status.AutoInstall, s.Status())

	s = f.get(px, "old")
	require.True(t, s.SetToInstall(pool.CauserApplHigh))
	assert.Equal(t, status.AutoUpdate, s.Status())

	s = f.get(px, "gone")
	require.True(t, s.SetToDelete(pool.CauserApplLow))
	assert.Equal(t, status.AutoDel, s.Status())
	assert.True(t, s.Status().IsAuto())
}

func TestSetStatusReleasesProtection(t *testing.T) {
	f := newFixture(t)
	inst := f.installed("foo", "1.0")
	f.available("foo", "2.0")
	s := f.get(f.proxy(), "foo")

	require.True(t, s.SetStatus(status.Protected, pool.CauserUser))
	assert.True(t, inst.Status().Locked())
	assert.False(t, s.SetStatus(status.Del, pool.CauserSolver))
	assert.Equal(t, status.Protected, s.Status())

	require.True(t, s.SetStatus(status.KeepInstalled, pool.CauserUser))
	assert.False(t, inst.Status().Locked())
	assert.Equal(t, status.KeepInstalled, s.Status())
}

func TestSetStatusLockNeedsRank(t *testing.T) {
	f := newFixture(t)
	f.available("foo", "1.0")
	s := f.get(f.proxy(), "foo")
	require.True(t, s.SetToInstall(pool.CauserUser))

	assert.False(t, s.SetStatus(status.Taboo, pool.CauserApplHigh))
	assert.Equal(t, status.Install, s.Status())
	assert.False(t, s.Locked())
}

func TestPatchClassification(t *testing.T) {
	f := newFixture(t)
	sat := f.add("sat", false, spec{kind: label.KindPatch, edition: "1"})
	sat.Status().SetEstablish(pool.EstablishSatisfied)
	broken := f.add("broken", false, spec{kind: label.KindPatch, edition: "1"})
	broken.Status().SetEstablish(pool.EstablishBroken)
	f.add("fresh", false, spec{kind: label.KindPatch, edition: "1"})
	f.available("pkg", "1.0")
	px := f.proxy()
	patch := func(name string) *Selectable {
		s := px.Get(label.MustIdent(label.KindPatch, name))
		require.NotNil(t, s)
		return s
	}

	s := patch("sat")
	assert.True(t, s.IsRelevant())
	assert.True(t, s.IsSatisfied())
	assert.False(t, s.IsBroken())
	assert.False(t, s.IsNeeded())
	assert.False(t, s.IsUndetermined())
	assert.Equal(t, status.KeepInstalled, s.Status())

	s = patch("broken")
	assert.True(t, s.IsRelevant())
	assert.True(t, s.IsBroken())
	assert.True(t, s.IsNeeded())
	assert.Equal(t, status.NoInst, s.Status())
	require.True(t, s.SetStatus(status.Taboo, pool.CauserUser))
	assert.False(t, s.IsNeeded())

	s = patch("fresh")
	assert.True(t, s.IsUndetermined())
	assert.False(t, s.IsRelevant())
	assert.False(t, s.IsNeeded())
	require.True(t, s.SetToInstall(pool.CauserUser))
	assert.True(t, s.IsNeeded())

	pkg := f.get(px, "pkg")
	assert.True(t, pkg.IsUndetermined())
	assert.False(t, pkg.IsRelevant())
	assert.False(t, pkg.IsSatisfied())
	assert.False(t, pkg.IsBroken())
	assert.False(t, pkg.IsNeeded())
}

func TestLicenceConfirmation(t *testing.T) {
	f := newFixture(t)
	a := f.available("foo", "2.0")
	b := f.available("foo", "1.0")
	f.installed("orphan", "1.0")
	px := f.proxy()

	s := f.get(px, "foo")
	assert.False(t, s.HasLicenceConfirmed())
	assert.False(t, s.SetLicenceConfirmed(true, pool.CauserApplHigh))
	assert.False(t, s.HasLicenceConfirmed())

	require.True(t, s.SetLicenceConfirmed(true, pool.CauserUser))
	assert.True(t, s.HasLicenceConfirmed())
	assert.True(t, a.Status().LicenceConfirmed())
	assert.True(t, b.Status().LicenceConfirmed())

	require.True(t, s.SetLicenceConfirmed(false, pool.CauserUser))
	assert.False(t, s.HasLicenceConfirmed())

	assert.False(t, f.get(px, "orphan").SetLicenceConfirmed(true, pool.CauserUser))
}
