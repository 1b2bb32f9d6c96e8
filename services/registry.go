package services

import (
	"github.com/google/uuid"

	"github.com/bellapacxx/arena-backend/models"
)

// Player is the live lobby record for one connection. ID stays empty until
// the connection identifies itself via join_lobby.
type Player struct {
	ID      string
	Name    string
	Color   string
	Conn    Conn
	InQueue bool
}

// Info returns the lobby-visible view
func (p *Player) Info() models.PlayerInfo {
	return models.PlayerInfo{ID: p.ID, Name: p.Name, Color: p.Color, InQueue: p.InQueue}
}

// Identified reports whether the player has joined the lobby
func (p *Player) Identified() bool {
	return p.ID != ""
}

// Registry tracks every live connection and its player record, preserving
// join order so lobby updates are stable. Not safe for concurrent use on its
// own; the Matchmaker serializes access.
type Registry struct {
	players map[Conn]*Player
	order   []Conn
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[Conn]*Player)}
}

// Register creates a blank record for a new connection. Re-registering the
// same connection keeps the existing record.
func (r *Registry) Register(conn Conn) *Player {
	if p, ok := r.players[conn]; ok {
		return p
	}
	p := &Player{Conn: conn}
	r.players[conn] = p
	r.order = append(r.order, conn)
	return p
}

// Identify assigns a fresh identity to the connection's record, defaulting
// name and color when absent. Registers the connection first if needed.
func (r *Registry) Identify(conn Conn, name, color string) *Player {
	p := r.Register(conn)
	p.ID = uuid.NewString()
	if name == "" {
		name = "Player_" + p.ID[:6]
	}
	if color == "" {
		color = colorFromName(name)
	}
	p.Name = name
	p.Color = color
	p.InQueue = false
	return p
}

// Get returns the record for a connection, or nil when unknown
func (r *Registry) Get(conn Conn) *Player {
	return r.players[conn]
}

// Unregister drops the connection entirely. Idempotent: unknown or already
// removed connections are a no-op.
func (r *Registry) Unregister(conn Conn) {
	if _, ok := r.players[conn]; !ok {
		return
	}
	delete(r.players, conn)
	for i, c := range r.order {
		if c == conn {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Players returns identified players in join order
func (r *Registry) Players() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, conn := range r.order {
		if p := r.players[conn]; p != nil && p.Identified() {
			out = append(out, p)
		}
	}
	return out
}

// Conns returns every registered connection, identified or not
func (r *Registry) Conns() []Conn {
	out := make([]Conn, len(r.order))
	copy(out, r.order)
	return out
}

// Len counts all registered connections
func (r *Registry) Len() int {
	return len(r.players)
}

// palette shared with the web client; index picked by a deterministic
// string hash so the same name always renders the same color
var palette = []string{
	"#06b6d4", "#f472b6", "#60a5fa", "#34d399",
	"#fbbf24", "#fb7185", "#a78bfa", "#f97316",
}

func colorFromName(name string) string {
	var h int32
	for _, c := range name {
		h = (h << 5) - h + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return palette[int(abs)%len(palette)]
}
