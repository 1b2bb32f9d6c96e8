package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bellapacxx/arena-backend/models"
	"github.com/bellapacxx/arena-backend/utils/logger"
)

// Matchmaker is the single entry point for every lobby and queue event. One
// mutex serializes all state mutations, so each dispatched message runs to
// completion before the next touches the registry, queues or room table —
// the Go shape of a single-threaded event loop. Construct it in main and
// pass it by reference; there are no package-level singletons here.
type Matchmaker struct {
	mu       sync.Mutex
	registry *Registry
	queues   *Queues
	rooms    *RoomManager
	bots     map[string]*BotConn // player id -> bot connection
	closed   bool
}

func NewMatchmaker(heartbeat time.Duration) *Matchmaker {
	return &Matchmaker{
		registry: NewRegistry(),
		queues:   NewQueues(),
		rooms:    NewRoomManager(heartbeat),
		bots:     make(map[string]*BotConn),
	}
}

// Connect registers a fresh connection with a blank player record
func (m *Matchmaker) Connect(conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.registry.Register(conn)
	logger.Debugf("[Matchmaker] connection registered (total=%d)", m.registry.Len())
}

// Disconnect removes the connection from every queue and the registry, then
// pushes a fresh lobby list. Safe to call twice.
func (m *Matchmaker) Disconnect(conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.registry.Get(conn)
	if p == nil {
		return
	}
	m.queues.DequeueAll(p)
	m.registry.Unregister(conn)
	if p.Identified() {
		delete(m.bots, p.ID)
		logger.Infof("[Matchmaker] %s (%s) disconnected", p.Name, p.ID)
	}
	m.broadcastLobby()
}

// HandleMessage decodes and routes one client message. Unknown or malformed
// messages are dropped without a response; they must never take down the
// connection or leak into a handler.
func (m *Matchmaker) HandleMessage(conn Conn, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Debugf("[Matchmaker] dropping undecodable message: %v", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	switch env.Type {
	case MsgJoinLobby:
		m.joinLobby(conn, JoinLobbyMsg{Name: env.Name, Color: env.Color})
	case MsgLeaveLobby:
		m.leaveLobby(conn)
	case MsgJoinQueue:
		mode := env.Mode
		if mode == "" {
			mode = models.Mode1v1
		}
		if !mode.Valid() {
			logger.Debugf("[Matchmaker] dropping join_queue with mode %q", env.Mode)
			return
		}
		m.joinQueue(conn, JoinQueueMsg{Mode: mode})
	case MsgLeaveQueue:
		m.leaveQueue(conn)
	default:
		logger.Debugf("[Matchmaker] dropping unknown message type %q", env.Type)
	}
}

func (m *Matchmaker) joinLobby(conn Conn, msg JoinLobbyMsg) {
	p := m.registry.Identify(conn, msg.Name, msg.Color)
	conn.TrySend(marshal(joinedMsg{Type: MsgJoined, ID: p.ID, Name: p.Name, Color: p.Color}))
	logger.Infof("[Matchmaker] %s joined lobby as %s", p.Name, p.ID)
	m.broadcastLobby()
}

func (m *Matchmaker) leaveLobby(conn Conn) {
	p := m.registry.Get(conn)
	if p == nil {
		return
	}
	m.queues.DequeueAll(p)
	m.registry.Unregister(conn)
	if p.Identified() {
		delete(m.bots, p.ID)
	}
	m.broadcastLobby()
}

func (m *Matchmaker) joinQueue(conn Conn, msg JoinQueueMsg) {
	p := m.registry.Get(conn)
	if p == nil || !p.Identified() {
		return
	}
	m.queues.Enqueue(p, msg.Mode)
	for _, match := range m.queues.TryMatch() {
		m.createMatch(match)
	}
	m.broadcastLobby()
}

func (m *Matchmaker) leaveQueue(conn Conn) {
	p := m.registry.Get(conn)
	if p == nil {
		return
	}
	m.queues.DequeueAll(p)
	m.broadcastLobby()
}

// createMatch allocates the room for a formed match, tells every player where
// to spawn and starts the room
func (m *Matchmaker) createMatch(match Match) {
	// Matched players must not keep waiting anywhere.
	for _, p := range match.Players {
		m.queues.DequeueAll(p)
	}
	room := m.rooms.CreateRoom(match.Mode, match.Players)

	payload := marshal(matchFoundMsg{
		Type:    MsgMatchFound,
		RoomID:  room.ID,
		Mode:    room.Mode,
		Players: room.Players,
	})
	for _, p := range match.Players {
		if !p.Conn.TrySend(payload) {
			logger.Debugf("[Matchmaker] match_found undeliverable to %s", p.ID)
		}
	}

	m.rooms.StartRoom(room.ID)
	logger.Infof("[Matchmaker] match formed: room=%s mode=%s", room.ID, room.Mode)
}

// broadcastLobby pushes the current identified player list to every
// registered connection, including ones that have not joined the lobby yet.
// Callers mutate state first, broadcast second.
func (m *Matchmaker) broadcastLobby() {
	players := m.registry.Players()
	list := make([]models.PlayerInfo, 0, len(players))
	for _, p := range players {
		list = append(list, p.Info())
	}

	payload := marshal(lobbyUpdateMsg{Type: MsgLobbyUpdate, Players: list})
	for _, conn := range m.registry.Conns() {
		conn.TrySend(payload)
	}
}

// EndRoom tears down a room and its heartbeat. Unknown ids are a no-op.
func (m *Matchmaker) EndRoom(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms.EndRoom(roomID)
}

// Shutdown ends every room and closes every connection. The matchmaker
// accepts no events afterwards.
func (m *Matchmaker) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.rooms.Shutdown()
	for _, conn := range m.registry.Conns() {
		conn.Close()
		m.registry.Unregister(conn)
	}
	m.bots = make(map[string]*BotConn)
	logger.Info("[Matchmaker] shut down")
}

// --------------------
// REST snapshots
// --------------------

// LobbyPlayers returns the identified player list in join order
func (m *Matchmaker) LobbyPlayers() []models.PlayerInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	players := m.registry.Players()
	out := make([]models.PlayerInfo, 0, len(players))
	for _, p := range players {
		out = append(out, p.Info())
	}
	return out
}

// QueueDepths reports how many players wait per mode
func (m *Matchmaker) QueueDepths() map[models.GameMode]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[models.GameMode]int{
		models.Mode1v1: m.queues.Depth(models.Mode1v1),
		models.Mode2v2: m.queues.Depth(models.Mode2v2),
	}
}

// Rooms lists every active room
func (m *Matchmaker) Rooms() []models.RoomInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	rooms := m.rooms.Rooms()
	out := make([]models.RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Info())
	}
	return out
}

// Room returns one room by id
func (m *Matchmaker) Room(roomID string) (models.RoomInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms.Get(roomID)
	if !ok {
		return models.RoomInfo{}, false
	}
	return room.Info(), true
}

// Stats summarizes the service for monitoring
func (m *Matchmaker) Stats() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	queued := 0
	for _, p := range m.registry.Players() {
		if p.InQueue {
			queued++
		}
	}
	return map[string]any{
		"connections": m.registry.Len(),
		"players":     len(m.registry.Players()),
		"queued":      queued,
		"rooms":       len(m.rooms.Rooms()),
		"bots":        len(m.bots),
	}
}
