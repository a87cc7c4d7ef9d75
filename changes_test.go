package selectable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-selectable/pool"
)

func TestPendingChanges(t *testing.T) {
	f := newFixture(t)
	f.available("fresh", "1.0")
	f.installed("gone", "1.0")
	f.installed("up", "1.0")
	f.available("up", "2.0")
	f.installed("down", "2.0")
	f.available("down", "1.0")
	f.installed("again", "1.0")
	f.available("again", "1.0")
	f.installed("kept", "1.0")
	px := f.proxy()

	require.True(t, f.get(px, "fresh").SetToInstall(pool.CauserUser))
	require.True(t, f.get(px, "gone").SetToDelete(pool.CauserSolver))
	require.True(t, f.get(px, "up").SetToInstall(pool.CauserUser))
	require.True(t, f.get(px, "down").SetToInstall(pool.CauserUser))
	require.True(t, f.get(px, "again").SetToInstall(pool.CauserUser))

	c := PendingChanges(px)
	assert.Equal(t, 5, c.TotalChanges())
	assert.False(t, c.IsEmpty())
	assert.Equal(t, []Change{{Ident: "fresh", Edition: "1.0", Causer: "user"}}, c.Installs)
	assert.Equal(t, []Change{{Ident: "gone", Edition: "1.0", Causer: "solver"}}, c.Deletes)
	assert.Equal(t, []Replacement{{Ident: "up", OldEdition: "1.0", NewEdition: "2.0", Causer: "user"}}, c.Upgrades)
	assert.Equal(t, []Replacement{{Ident: "down", OldEdition: "2.0", NewEdition: "1.0", Causer: "user"}}, c.Downgrades)
	assert.Equal(t, []Replacement{{Ident: "again", OldEdition: "1.0", NewEdition: "1.0", Causer: "user"}}, c.Reinstalls)
}

func TestPendingChangesEmpty(t *testing.T) {
	f := newFixture(t)
	f.installed("foo", "1.0")
	f.available("foo", "2.0")

	c := PendingChanges(f.proxy())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalChanges())
}
