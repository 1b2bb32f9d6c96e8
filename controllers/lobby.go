package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellapacxx/arena-backend/models"
	"github.com/bellapacxx/arena-backend/services"
)

// Controller exposes the matchmaker over REST. The service is injected at
// route setup instead of living in a package global so tests can run against
// isolated instances.
type Controller struct {
	mm *services.Matchmaker
}

func New(mm *services.Matchmaker) *Controller {
	return &Controller{mm: mm}
}

// LobbyStatus returns the current lobby player list and queue depths
func (ct *Controller) LobbyStatus(c *gin.Context) {
	depths := ct.mm.QueueDepths()
	c.JSON(http.StatusOK, gin.H{
		"players": ct.mm.LobbyPlayers(),
		"queues": gin.H{
			string(models.Mode1v1): depths[models.Mode1v1],
			string(models.Mode2v2): depths[models.Mode2v2],
		},
	})
}

// Stats returns service-level counters
func (ct *Controller) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, ct.mm.Stats())
}
