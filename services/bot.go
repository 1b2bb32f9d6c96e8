package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bellapacxx/arena-backend/models"
	"github.com/bellapacxx/arena-backend/utils/logger"
)

// BotConn is a loopback connection with no transport behind it. Bots travel
// the exact same dispatcher paths as real clients, which keeps the event
// surface identical between live and simulated play and gives 2v2 queues
// something to chew on during development.
type BotConn struct {
	mu      sync.Mutex
	closed  bool
	matches []string // room ids this bot was matched into
}

func NewBotConn() *BotConn {
	return &BotConn{}
}

// TrySend implements Conn. Frames are decoded just enough to track match
// placement; everything else is discarded like a headless client would.
func (b *BotConn) TrySend(payload []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}

	var probe struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	if err := json.Unmarshal(payload, &probe); err == nil && probe.Type == MsgMatchFound {
		b.matches = append(b.matches, probe.RoomID)
	}
	return true
}

// Close implements Conn
func (b *BotConn) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Matches lists the rooms this bot has been seated in
func (b *BotConn) Matches() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.matches))
	copy(out, b.matches)
	return out
}

// AddBot registers a simulated player in the lobby and, when mode is set,
// queues it immediately. Returns the bot's lobby identity.
func (m *Matchmaker) AddBot(name string, mode models.GameMode) (models.PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return models.PlayerInfo{}, fmt.Errorf("matchmaker is shut down")
	}
	if mode != "" && !mode.Valid() {
		return models.PlayerInfo{}, fmt.Errorf("unsupported mode %q", mode)
	}

	bot := NewBotConn()
	m.registry.Register(bot)
	m.joinLobby(bot, JoinLobbyMsg{Name: name})

	p := m.registry.Get(bot)
	m.bots[p.ID] = bot
	logger.Infof("[Matchmaker] bot %s added as %s", p.Name, p.ID)

	if mode != "" {
		m.joinQueue(bot, JoinQueueMsg{Mode: mode})
		p = m.registry.Get(bot)
	}
	return p.Info(), nil
}

// RemoveBot disconnects a bot by player id. Unknown ids report false.
func (m *Matchmaker) RemoveBot(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	bot, ok := m.bots[playerID]
	if !ok {
		return false
	}
	m.leaveLobby(bot) // also clears m.bots
	bot.Close()
	logger.Infof("[Matchmaker] bot %s removed", playerID)
	return true
}
