package services

import (
	"encoding/json"
	"sync"
)

// fakeConn captures everything the core tries to send so tests can assert on
// the exact frames a client would have seen.
type fakeConn struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
	full   bool // when set, TrySend reports failure like a saturated queue
}

func newFakeConn() *fakeConn {
	return &fakeConn{}
}

func (f *fakeConn) TrySend(payload []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.full {
		return false
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	f.frames = append(f.frames, cp)
	return true
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// typed returns every decoded frame of the given message type, oldest first
func (f *fakeConn) typed(msgType string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []map[string]any
	for _, frame := range f.frames {
		var m map[string]any
		if err := json.Unmarshal(frame, &m); err != nil {
			continue
		}
		if m["type"] == msgType {
			out = append(out, m)
		}
	}
	return out
}

// lastLobbyNames returns the player names in the most recent lobby_update,
// nil when none was received
func (f *fakeConn) lastLobbyNames() []string {
	updates := f.typed(MsgLobbyUpdate)
	if len(updates) == 0 {
		return nil
	}
	raw, _ := updates[len(updates)-1]["players"].([]any)
	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		if p, ok := entry.(map[string]any); ok {
			if name, ok := p["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func (f *fakeConn) frameCount(msgType string) int {
	return len(f.typed(msgType))
}
