package services

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bellapacxx/arena-backend/utils/logger"
)

// originChecker accepts browser upgrades from the configured origins only.
// Requests without an Origin header (non-browser clients) pass through.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket upgrades the request and hands the connection to the
// matchmaker. Identification happens over the socket via join_lobby.
func HandleWebSocket(mm *Matchmaker, sendBuffer int, allowedOrigins []string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Errorf("[WS] upgrade error: %v", err)
			return
		}

		client := NewClient(conn, mm, sendBuffer)
		logger.Debugf("[WS] new connection from %s", c.ClientIP())
		client.Run()
	}
}
