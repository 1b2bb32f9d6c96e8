package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellapacxx/arena-backend/models"
)

type AddBotRequest struct {
	Name string          `json:"name"`
	Mode models.GameMode `json:"mode"` // optional: queue the bot right away
}

// AddBot registers a simulated player. Useful for filling 2v2 queues while
// testing against a single browser.
func (ct *Controller) AddBot(c *gin.Context) {
	var req AddBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bot, err := ct.mm.AddBot(req.Name, req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bot)
}

// RemoveBot disconnects a bot by player id
func (ct *Controller) RemoveBot(c *gin.Context) {
	if !ct.mm.RemoveBot(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bot not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bot removed"})
}
