package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bellapacxx/arena-backend/config"
	"github.com/bellapacxx/arena-backend/routes"
	"github.com/bellapacxx/arena-backend/services"
	"github.com/bellapacxx/arena-backend/utils/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg config.Config, mm *services.Matchmaker) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, mm)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket matchmaking endpoint
	r.GET("/ws", services.HandleWebSocket(mm, cfg.SendBuffer, cfg.AllowedOrigins))

	return r
}

func main() {
	// Load env variables and config
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.LogFile, cfg.Development)
	defer logger.Sync()

	// Initialize the matchmaking service
	mm := services.NewMatchmaker(cfg.HeartbeatInterval)

	// Setup Gin router
	router := setupRouter(cfg, mm)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Arena Backend server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on Ctrl+C
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	mm.Shutdown()
	_ = srv.Close()
}
