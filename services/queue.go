package services

import "github.com/bellapacxx/arena-backend/models"

// Match is a formed group of players ready for room allocation. Forming a
// match has no side effect beyond removing its players from the queue; room
// creation belongs to the caller.
type Match struct {
	Mode    models.GameMode
	Players []*Player
}

// Queues holds the per-mode FIFO waiting lists. Like Registry, serialized by
// the Matchmaker.
type Queues struct {
	waiting map[models.GameMode][]*Player
}

func NewQueues() *Queues {
	return &Queues{
		waiting: map[models.GameMode][]*Player{
			models.Mode1v1: nil,
			models.Mode2v2: nil,
		},
	}
}

// Enqueue appends the player to the tail of the mode's queue. Re-joining the
// same mode is a no-op that keeps the player's position; a player waits in at
// most one queue, so joining a different mode moves them there.
func (q *Queues) Enqueue(p *Player, mode models.GameMode) {
	for _, waiting := range q.waiting[mode] {
		if waiting == p {
			return
		}
	}
	for other, waiting := range q.waiting {
		if other == mode {
			continue
		}
		filtered := waiting[:0]
		for _, w := range waiting {
			if w != p {
				filtered = append(filtered, w)
			}
		}
		q.waiting[other] = filtered
	}
	q.waiting[mode] = append(q.waiting[mode], p)
	p.InQueue = true
}

// DequeueAll removes the player from every queue; absent players are a no-op
func (q *Queues) DequeueAll(p *Player) {
	for mode, waiting := range q.waiting {
		filtered := waiting[:0]
		for _, w := range waiting {
			if w != p {
				filtered = append(filtered, w)
			}
		}
		q.waiting[mode] = filtered
	}
	p.InQueue = false
}

// TryMatch greedily pops full matches off the queue heads: 1v1 pairs first,
// then 2v2 quads, always oldest first. Fixed mode order keeps outcomes
// reproducible for identical input order.
func (q *Queues) TryMatch() []Match {
	var matches []Match
	for _, mode := range []models.GameMode{models.Mode1v1, models.Mode2v2} {
		size := mode.Size()
		for len(q.waiting[mode]) >= size {
			players := make([]*Player, size)
			copy(players, q.waiting[mode][:size])
			q.waiting[mode] = q.waiting[mode][size:]
			for _, p := range players {
				p.InQueue = false
			}
			matches = append(matches, Match{Mode: mode, Players: players})
		}
	}
	return matches
}

// Depth reports how many players wait in the mode's queue
func (q *Queues) Depth(mode models.GameMode) int {
	return len(q.waiting[mode])
}
