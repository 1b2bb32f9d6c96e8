package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/bellapacxx/arena-backend/models"
	"github.com/bellapacxx/arena-backend/utils/logger"
)

// Room is one active match. The roster is snapshotted at creation and never
// mutated afterwards: renaming or disconnecting a player does not rewrite a
// running match. seats holds the matching connections in roster order.
type Room struct {
	ID        string
	Mode      models.GameMode
	Players   []models.RoomPlayer
	CreatedAt time.Time
	Started   bool

	seats []Conn
	stop  chan struct{}
}

// Info returns the REST view of the room
func (r *Room) Info() models.RoomInfo {
	players := make([]models.RoomPlayer, len(r.Players))
	copy(players, r.Players)
	return models.RoomInfo{
		ID:        r.ID,
		Mode:      r.Mode,
		Players:   players,
		Started:   r.Started,
		CreatedAt: r.CreatedAt,
	}
}

// broadcast delivers the payload to every seated connection. A failed or
// closed connection never blocks the rest of the room.
func (r *Room) broadcast(payload []byte) {
	for i, conn := range r.seats {
		if conn == nil {
			continue
		}
		if !conn.TrySend(payload) {
			logger.Debugf("[Room %s] dropped frame for %s", r.ID, r.Players[i].ID)
		}
	}
}

// RoomManager owns the active room table and each room's heartbeat.
// Serialized by the Matchmaker like the other core components; heartbeat
// goroutines touch only the immutable roster and their own stop channel.
type RoomManager struct {
	rooms     map[string]*Room
	heartbeat time.Duration
}

func NewRoomManager(heartbeat time.Duration) *RoomManager {
	if heartbeat <= 0 {
		heartbeat = time.Second
	}
	return &RoomManager{
		rooms:     make(map[string]*Room),
		heartbeat: heartbeat,
	}
}

// AssignPads maps players to spawn pad indexes, deterministic in player
// order: 1v1 seats pads 0 and 1, 2v2 seats index mod 4.
func AssignPads(mode models.GameMode, players []*Player) map[string]int {
	pads := make(map[string]int, len(players))
	for i, p := range players {
		switch mode {
		case models.Mode1v1:
			pads[p.ID] = i
		default:
			pads[p.ID] = i % 4
		}
	}
	return pads
}

// CreateRoom allocates a room in the created (not started) state, snapshotting
// the roster with pad assignments.
func (m *RoomManager) CreateRoom(mode models.GameMode, players []*Player) *Room {
	if len(players) != mode.Size() {
		logger.DPanicf("[Room] %s match with %d players", mode, len(players))
	}

	pads := AssignPads(mode, players)
	room := &Room{
		ID:        uuid.NewString(),
		Mode:      mode,
		CreatedAt: time.Now(),
		stop:      make(chan struct{}),
	}
	for _, p := range players {
		room.Players = append(room.Players, models.RoomPlayer{
			ID:          p.ID,
			Name:        p.Name,
			Color:       p.Color,
			AssignedPad: pads[p.ID],
		})
		room.seats = append(room.seats, p.Conn)
	}

	m.rooms[room.ID] = room
	logger.Infof("[Room %s] created: mode=%s players=%d", room.ID, mode, len(players))
	return room
}

// StartRoom moves the room to started, notifies every seat and begins the
// periodic heartbeat. Unknown or already started rooms are a no-op.
func (m *RoomManager) StartRoom(roomID string) {
	room, ok := m.rooms[roomID]
	if !ok || room.Started {
		return
	}
	room.Started = true

	room.broadcast(marshal(matchStartMsg{
		Type:   MsgMatchStart,
		RoomID: room.ID,
		Tick:   time.Now().UnixMilli(),
	}))

	go m.runHeartbeat(room)
	logger.Infof("[Room %s] started", room.ID)
}

// runHeartbeat broadcasts minimal room state until the room ends
func (m *RoomManager) runHeartbeat(room *Room) {
	ticker := time.NewTicker(m.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-room.stop:
			return
		case <-ticker.C:
			room.broadcast(marshal(gameStateMsg{
				Type:   MsgGameState,
				RoomID: room.ID,
				Time:   time.Now().UnixMilli(),
			}))
		}
	}
}

// EndRoom cancels the heartbeat and removes the room. The room leaves the
// table on the first call, so a second end (or an unknown id) is a no-op and
// the stop channel is closed exactly once.
func (m *RoomManager) EndRoom(roomID string) {
	room, ok := m.rooms[roomID]
	if !ok {
		return
	}
	delete(m.rooms, roomID)
	close(room.stop)
	logger.Infof("[Room %s] ended", room.ID)
}

// Get returns a room by id
func (m *RoomManager) Get(roomID string) (*Room, bool) {
	room, ok := m.rooms[roomID]
	return room, ok
}

// Rooms lists every active room
func (m *RoomManager) Rooms() []*Room {
	out := make([]*Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		out = append(out, room)
	}
	return out
}

// Shutdown ends every room, cancelling all heartbeats
func (m *RoomManager) Shutdown() {
	for id := range m.rooms {
		m.EndRoom(id)
	}
}
