package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gravitas-games/hexboard/internal/network"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	ws       *websocket.Conn
	server   *Server
	username string

	// Buffered channel for outbound messages
	send chan []byte

	closed bool
}

// NewConnection creates a new connection
func NewConnection(ws *websocket.Conn, server *Server, username string) *Connection {
	return &Connection{
		ws:       ws,
		server:   server,
		username: username,
		send:     make(chan []byte, 256),
	}
}

// Handle manages the connection lifecycle
func (c *Connection) Handle() {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Start read and write pumps
	go c.writePump()
	c.readPump() // Blocking
}

// readPump pumps messages from the WebSocket connection to the server
func (c *Connection) readPump() {
	defer func() {
		c.Close()
	}()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var clientMsg network.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Failed to parse client message: %v", err)
			c.SendError("invalid_message", "Failed to parse message")
			continue
		}

		c.handleMessage(&clientMsg)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.ctx.Done():
			// Server shutting down
			return
		}
	}
}

// handleMessage routes messages to appropriate handlers
func (c *Connection) handleMessage(msg *network.ClientMessage) {
	log.Printf("Received message type: %s from %s", msg.Type, c.username)

	switch msg.Type {
	case network.MsgTypeGenerate:
		c.handleGenerate(msg.Payload)

	case network.MsgTypePing:
		c.handlePing()

	default:
		log.Printf("Unknown message type: %s", msg.Type)
		c.SendError("unknown_message_type", "Unknown message type")
	}
}

// handleGenerate streams one or more generated boards back to the client
func (c *Connection) handleGenerate(payload json.RawMessage) {
	var genReq network.GeneratePayload
	if err := json.Unmarshal(payload, &genReq); err != nil {
		log.Printf("Failed to parse generate payload: %v", err)
		c.SendError("invalid_request", "Invalid generate request")
		return
	}

	count := genReq.Count
	if count < 1 {
		count = 1
	}
	if max := c.server.config.Generate.MaxSample; count > max {
		count = max
	}

	sent := 0
	for i := 0; i < count; i++ {
		result, err := c.server.generateBoard(c.server.ctx, &genReq)
		if err != nil {
			code, _ := classifyError(err)
			c.SendError(code, err.Error())
			break
		}
		sent++
		c.SendMessage(&network.ServerMessage{
			Type:    network.MsgTypeBoard,
			Payload: result,
		})
	}

	c.SendMessage(&network.ServerMessage{
		Type:    network.MsgTypeDone,
		Payload: network.DonePayload{Boards: sent},
	})
	log.Printf("Streamed %d boards to %s", sent, c.username)
}

// handlePing handles ping requests
func (c *Connection) handlePing() {
	c.SendMessage(&network.ServerMessage{
		Type:    network.MsgTypePong,
		Payload: map[string]interface{}{"timestamp": time.Now().Unix()},
	})
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *network.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal message: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("Send buffer full, dropping message")
	}
}

// SendError sends an error message to the client
func (c *Connection) SendError(code, message string) {
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeError,
		Payload: network.ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Close closes the connection
func (c *Connection) Close() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	c.ws.Close()
}
