package services

import (
	"encoding/json"

	"github.com/bellapacxx/arena-backend/models"
)

// Client → server message types
const (
	MsgJoinLobby  = "join_lobby"
	MsgLeaveLobby = "leave_lobby"
	MsgJoinQueue  = "join_queue"
	MsgLeaveQueue = "leave_queue"
)

// Server → client message types
const (
	MsgJoined      = "joined"
	MsgLobbyUpdate = "lobby_update"
	MsgMatchFound  = "match_found"
	MsgMatchStart  = "match_start"
	MsgGameState   = "game_state"
)

// envelope carries the union of all client message fields. It is decoded and
// validated once at the boundary; handlers only ever see the typed payloads
// below.
type envelope struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Mode  models.GameMode `json:"mode"`
}

// JoinLobbyMsg asks to be identified in the lobby. Both fields optional.
type JoinLobbyMsg struct {
	Name  string
	Color string
}

// JoinQueueMsg asks to wait for a match of the given (validated) mode.
type JoinQueueMsg struct {
	Mode models.GameMode
}

// joinedMsg acks a join_lobby with the assigned identity
type joinedMsg struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type lobbyUpdateMsg struct {
	Type    string              `json:"type"`
	Players []models.PlayerInfo `json:"players"`
}

type matchFoundMsg struct {
	Type    string              `json:"type"`
	RoomID  string              `json:"roomId"`
	Mode    models.GameMode     `json:"mode"`
	Players []models.RoomPlayer `json:"players"`
}

type matchStartMsg struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	Tick   int64  `json:"tick"` // unix millis
}

type gameStateMsg struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	Time   int64  `json:"time"` // unix millis
}

func marshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// All server message types are plain structs; this cannot fail
		return nil
	}
	return b
}
