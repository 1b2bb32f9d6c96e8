package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRooms returns all active rooms
func (ct *Controller) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, ct.mm.Rooms())
}

// GetRoom returns a single room by id
func (ct *Controller) GetRoom(c *gin.Context) {
	room, ok := ct.mm.Room(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// EndRoom tears a room down. Idempotent: ending an unknown room still
// reports ok, matching the core's no-op semantics.
func (ct *Controller) EndRoom(c *gin.Context) {
	ct.mm.EndRoom(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Room ended"})
}
