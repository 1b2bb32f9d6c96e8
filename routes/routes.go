package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bellapacxx/arena-backend/controllers"
	"github.com/bellapacxx/arena-backend/services"
)

func SetupRoutes(r *gin.Engine, mm *services.Matchmaker) {
	ct := controllers.New(mm)

	api := r.Group("/api")

	// ----------------------
	// Lobby routes
	// ----------------------
	api.GET("/lobby", ct.LobbyStatus) // Current players and queue depths
	api.GET("/stats", ct.Stats)       // Service counters

	// ----------------------
	// Room routes
	// ----------------------
	api.GET("/rooms", ct.ListRooms)       // List active rooms
	api.GET("/rooms/:id", ct.GetRoom)     // Get room by id
	api.DELETE("/rooms/:id", ct.EndRoom)  // Tear a room down

	// ----------------------
	// Bot routes (simulated clients)
	// ----------------------
	api.POST("/bots", ct.AddBot)          // Add a simulated player
	api.DELETE("/bots/:id", ct.RemoveBot) // Disconnect a simulated player
}
