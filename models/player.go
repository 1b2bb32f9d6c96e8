package models

// GameMode identifies a match format
type GameMode string

const (
	Mode1v1 GameMode = "1v1"
	Mode2v2 GameMode = "2v2"
)

// Valid reports whether the mode is one we actually run
func (m GameMode) Valid() bool {
	return m == Mode1v1 || m == Mode2v2
}

// Size returns how many players a match of this mode seats
func (m GameMode) Size() int {
	switch m {
	case Mode1v1:
		return 2
	case Mode2v2:
		return 4
	}
	return 0
}

// PlayerInfo is the lobby-visible view of a player (lobby_update entries)
type PlayerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	InQueue bool   `json:"inQueue"`
}
