package models

import "time"

// RoomPlayer is the immutable roster entry snapshotted at match creation
type RoomPlayer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	AssignedPad int    `json:"assignedPad"`
}

// RoomInfo is the REST view of an active room
type RoomInfo struct {
	ID        string       `json:"room_id"`
	Mode      GameMode     `json:"mode"`
	Players   []RoomPlayer `json:"players"`
	Started   bool         `json:"started"`
	CreatedAt time.Time    `json:"created_at"`
}
