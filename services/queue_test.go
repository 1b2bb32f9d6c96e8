package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellapacxx/arena-backend/models"
)

func queuedPlayer(name string) *Player {
	return &Player{ID: name, Name: name, Conn: newFakeConn()}
}

func TestEnqueueDuplicateIsNoop(t *testing.T) {
	q := NewQueues()
	p := queuedPlayer("alice")

	q.Enqueue(p, models.Mode1v1)
	q.Enqueue(p, models.Mode1v1)

	assert.Equal(t, 1, q.Depth(models.Mode1v1))
	assert.True(t, p.InQueue)
}

func TestEnqueueSwitchesModes(t *testing.T) {
	q := NewQueues()
	p := queuedPlayer("alice")

	q.Enqueue(p, models.Mode1v1)
	q.Enqueue(p, models.Mode2v2)

	// A player waits in at most one queue at a time.
	assert.Equal(t, 0, q.Depth(models.Mode1v1))
	assert.Equal(t, 1, q.Depth(models.Mode2v2))
	assert.True(t, p.InQueue)

	// Switching back requeues at the tail of the other mode.
	other := queuedPlayer("bob")
	q.Enqueue(other, models.Mode1v1)
	q.Enqueue(p, models.Mode1v1)
	assert.Equal(t, 0, q.Depth(models.Mode2v2))

	matches := q.TryMatch()
	require.Len(t, matches, 1)
	assert.Equal(t, []*Player{other, p}, matches[0].Players)
}

func TestTryMatchFIFOPairs(t *testing.T) {
	q := NewQueues()
	a, b, c, d := queuedPlayer("a"), queuedPlayer("b"), queuedPlayer("c"), queuedPlayer("d")
	for _, p := range []*Player{a, b, c, d} {
		q.Enqueue(p, models.Mode1v1)
	}

	matches := q.TryMatch()
	require.Len(t, matches, 2)

	// The two oldest pair first
	assert.Equal(t, []*Player{a, b}, matches[0].Players)
	assert.Equal(t, []*Player{c, d}, matches[1].Players)
	assert.Equal(t, 0, q.Depth(models.Mode1v1))

	for _, p := range []*Player{a, b, c, d} {
		assert.False(t, p.InQueue)
	}
}

func TestTryMatch2v2Threshold(t *testing.T) {
	q := NewQueues()
	a, b, c := queuedPlayer("a"), queuedPlayer("b"), queuedPlayer("c")
	for _, p := range []*Player{a, b, c} {
		q.Enqueue(p, models.Mode2v2)
	}

	// Three waiting is below capacity
	require.Empty(t, q.TryMatch())
	assert.Equal(t, 3, q.Depth(models.Mode2v2))

	d := queuedPlayer("d")
	q.Enqueue(d, models.Mode2v2)

	matches := q.TryMatch()
	require.Len(t, matches, 1)
	assert.Equal(t, models.Mode2v2, matches[0].Mode)
	assert.Equal(t, []*Player{a, b, c, d}, matches[0].Players)
	assert.Equal(t, 0, q.Depth(models.Mode2v2))
}

func TestTryMatchProcesses1v1Before2v2(t *testing.T) {
	q := NewQueues()
	for _, name := range []string{"w", "x", "y", "z"} {
		q.Enqueue(queuedPlayer(name), models.Mode2v2)
	}
	q.Enqueue(queuedPlayer("a"), models.Mode1v1)
	q.Enqueue(queuedPlayer("b"), models.Mode1v1)

	matches := q.TryMatch()
	require.Len(t, matches, 2)
	assert.Equal(t, models.Mode1v1, matches[0].Mode)
	assert.Equal(t, models.Mode2v2, matches[1].Mode)
}

func TestDequeueAllIdempotent(t *testing.T) {
	q := NewQueues()
	a, b := queuedPlayer("a"), queuedPlayer("b")
	q.Enqueue(a, models.Mode1v1)
	q.Enqueue(b, models.Mode2v2)

	q.DequeueAll(a)
	q.DequeueAll(a) // second removal is a no-op
	q.DequeueAll(queuedPlayer("stranger"))

	assert.Equal(t, 0, q.Depth(models.Mode1v1))
	assert.Equal(t, 1, q.Depth(models.Mode2v2))
	assert.False(t, a.InQueue)
	assert.True(t, b.InQueue)
}

func TestTryMatchLeavesRemainderQueued(t *testing.T) {
	q := NewQueues()
	a, b, c := queuedPlayer("a"), queuedPlayer("b"), queuedPlayer("c")
	for _, p := range []*Player{a, b, c} {
		q.Enqueue(p, models.Mode1v1)
	}

	matches := q.TryMatch()
	require.Len(t, matches, 1)
	assert.Equal(t, []*Player{a, b}, matches[0].Players)

	// c stays at the head for the next attempt
	assert.Equal(t, 1, q.Depth(models.Mode1v1))
	assert.True(t, c.InQueue)
}
