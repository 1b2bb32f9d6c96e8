package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/bellapacxx/arena-backend/utils/logger"
)

// Conn is the send capability the matchmaking core sees. Implementations own
// the transport; the core never inspects readiness state directly.
type Conn interface {
	// TrySend queues a message for delivery, reporting false when the
	// connection is closed or its outbound queue is full. A false return
	// must never affect delivery to other connections.
	TrySend(payload []byte) bool
	// Close tears down the transport; safe to call more than once.
	Close()
}

// Client wraps a live websocket connection with buffered write and read pumps
type Client struct {
	conn *websocket.Conn
	mm   *Matchmaker
	send chan []byte
	once sync.Once
}

// NewClient wires a websocket connection into the matchmaker. The caller must
// start the pumps with Run.
func NewClient(conn *websocket.Conn, mm *Matchmaker, sendBuffer int) *Client {
	return &Client{
		conn: conn,
		mm:   mm,
		send: make(chan []byte, sendBuffer),
	}
}

// Run registers the client and starts both pumps. Blocks until the read side
// closes, then unwinds via the matchmaker disconnect path.
func (c *Client) Run() {
	c.mm.Connect(c)
	go c.writePump()
	c.readPump()
}

// TrySend implements Conn. Non-blocking: a slow consumer loses frames rather
// than stalling a state mutation. Room rosters keep a conn reference past
// disconnect, so a send can race Close; the recover absorbs the closed channel.
func (c *Client) TrySend(payload []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	select {
	case c.send <- payload:
		return true
	default:
		logger.Debugf("[WS] dropping frame, send queue full")
		return false
	}
}

// Close implements Conn
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

func (c *Client) readPump() {
	defer func() {
		c.mm.Disconnect(c)
		c.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[WS] client disconnected normally")
			} else {
				logger.Debugf("[WS] read error: %v", err)
			}
			return
		}
		c.mm.HandleMessage(c, message)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("[WS] write error: %v", err)
			return
		}
	}
}
