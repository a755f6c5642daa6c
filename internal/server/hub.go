package server

import (
	"log"
	"sync"

	"set-game/internal/game"
	"set-game/internal/protocol"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages active WebSocket connections and the game session each one owns.
type Hub struct {
	clients        map[*Client]bool
	sessions       map[string]*Session // Map session ID to session
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	clientMu       sync.RWMutex
	sessionMu      sync.RWMutex
	gameConfig     game.Config
	sendBuffer     int
}

// NewHub creates a new Hub instance. Every connection gets a game built from cfg.
func NewHub(cfg game.Config, sendBuffer int) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &Hub{
		clients:        make(map[*Client]bool),
		sessions:       make(map[string]*Session),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		gameConfig:     cfg,
		sendBuffer:     sendBuffer,
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	client.ID = uuid.NewString()
	session := newSession(h.gameConfig)
	client.session = session

	h.clientMu.Lock()
	h.clients[client] = true
	h.clientMu.Unlock()

	h.sessionMu.Lock()
	h.sessions[session.ID] = session
	h.sessionMu.Unlock()

	log.Printf("Client %s (%s) connected with session %s", client.ID, client.conn.RemoteAddr(), session.ID)

	msg, err := session.stateMessage()
	if err != nil {
		log.Printf("Session %s: error creating initial state message: %v", session.ID, err)
		return
	}
	h.sendMessageToClient(client, msg)
}

func (h *Hub) handleUnregister(client *Client) {
	h.clientMu.Lock()
	_, exists := h.clients[client]
	if exists {
		delete(h.clients, client)
		close(client.send)
	}
	h.clientMu.Unlock()

	if !exists {
		return
	}
	if client.session != nil {
		h.sessionMu.Lock()
		delete(h.sessions, client.session.ID)
		h.sessionMu.Unlock()
	}
	log.Printf("Client %s disconnected", client.ID)
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	if msg.Type == protocol.TypePing {
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendMessageToClient(client, pongMsg)
		return
	}
	if client.session == nil {
		h.sendErrorToClient(client, "No active game.")
		return
	}

	reply, err := client.session.Apply(msg)
	if err != nil {
		log.Printf("Session %s: rejected '%s' from client %s: %v", client.session.ID, msg.Type, client.ID, err)
		h.sendErrorToClient(client, "Invalid message.")
		return
	}
	h.sendMessageToClient(client, reply)
}

// Session returns the live session with the given ID.
func (h *Hub) Session(id string) (*Session, bool) {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// SessionCount returns the number of live sessions.
func (h *Hub) SessionCount() int {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	return len(h.sessions)
}

// sendMessageToClient queues a message without blocking the hub.
func (h *Hub) sendMessageToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	_, connected := h.clients[client]
	h.clientMu.RUnlock()
	if !connected {
		log.Printf("Could not find client %s to send message (already disconnected?).", client.ID)
		return
	}

	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to client %s (channel full), initiating cleanup.", client.ID)
		go func() {
			h.unregister <- client
		}()
	}
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client, msgBytes)
}
