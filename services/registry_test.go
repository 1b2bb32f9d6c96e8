package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsStable(t *testing.T) {
	r := NewRegistry()
	conn := newFakeConn()

	p1 := r.Register(conn)
	p2 := r.Register(conn)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, r.Len())
}

func TestIdentifyDefaults(t *testing.T) {
	r := NewRegistry()
	conn := newFakeConn()

	p := r.Identify(conn, "", "")

	require.NotEmpty(t, p.ID)
	assert.Equal(t, "Player_"+p.ID[:6], p.Name)
	assert.Contains(t, palette, p.Color)
}

func TestColorFromNameDeterministic(t *testing.T) {
	assert.Equal(t, colorFromName("alice"), colorFromName("alice"))
	assert.Contains(t, palette, colorFromName("bob"))
}

func TestColorFromNameMatchesPalette(t *testing.T) {
	assert.Equal(t, "#06b6d4", colorFromName("alice"))
	assert.Equal(t, "#fb7185", colorFromName("bob"))

	// Names with negative hashes index via absolute value.
	assert.Equal(t, "#60a5fa", colorFromName("Player_a1b2c3"))
	assert.Equal(t, "#a78bfa", colorFromName("ArenaRegular_99"))
}

func TestIdentifyKeepsProvidedIdentity(t *testing.T) {
	r := NewRegistry()
	p := r.Identify(newFakeConn(), "alice", "#123456")

	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, "#123456", p.Color)
}

func TestPlayersOnlyIdentifiedInJoinOrder(t *testing.T) {
	r := NewRegistry()
	first, second, silent := newFakeConn(), newFakeConn(), newFakeConn()

	r.Identify(first, "first", "")
	r.Register(silent) // connected, never joined the lobby
	r.Identify(second, "second", "")

	players := r.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "first", players[0].Name)
	assert.Equal(t, "second", players[1].Name)

	// silent still counts as a connection
	assert.Equal(t, 3, r.Len())
	assert.Len(t, r.Conns(), 3)
}

func TestUnregisterIdempotent(t *testing.T) {
	r := NewRegistry()
	conn := newFakeConn()
	r.Identify(conn, "alice", "")

	r.Unregister(conn)
	r.Unregister(conn)            // second call is a no-op
	r.Unregister(newFakeConn())   // unknown connection is a no-op

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Players())
}

func TestReidentifyAssignsFreshID(t *testing.T) {
	r := NewRegistry()
	conn := newFakeConn()

	p := r.Identify(conn, "alice", "")
	oldID := p.ID
	p = r.Identify(conn, "alice2", "")

	assert.NotEqual(t, oldID, p.ID)
	assert.Equal(t, "alice2", p.Name)
	assert.Equal(t, 1, r.Len())
}
