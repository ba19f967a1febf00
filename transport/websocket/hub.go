package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// Envelope is the wire format in both directions: a named event with an
// optional structured payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MessageHandler receives inbound events and connection-closed
// notifications for dispatch against the game service.
type MessageHandler interface {
	HandleMessage(connID string, env Envelope)
	HandleDisconnect(connID string)
}

// Client represents one WebSocket connection.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	id      string
	handler MessageHandler
}

// ID returns the connection identity assigned at upgrade time.
func (c *Client) ID() string {
	return c.id
}

type subscription struct {
	connID  string
	lobbyID string
	done    chan struct{}
}

type outbound struct {
	// lobbyID targets a broadcast group; connID targets one client.
	// Exactly one of the two is set.
	lobbyID string
	connID  string
	payload []byte
}

// Hub maintains the set of active clients and the per-lobby broadcast
// groups, and routes outbound messages.
type Hub struct {
	// Registered clients by connection identity
	clients map[string]*Client

	// Broadcast groups keyed by lobby ID
	lobbies map[string]map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	outboundMsg chan outbound
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	return &Hub{
		clients:     make(map[string]*Client),
		lobbies:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		outboundMsg: make(chan outbound),
	}
}

// Run starts the hub's event loop. All group-map access happens on this
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case sub := <-h.subscribe:
			h.subscribeClient(sub)

		case msg := <-h.outboundMsg:
			h.dispatch(msg)
		}
	}
}

// ServeWS upgrades an HTTP request, assigns a connection identity, and
// starts the client's read/write pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, handler MessageHandler) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 256),
		id:      uuid.NewString(),
		handler: handler,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// Subscribe adds a connection to a lobby's broadcast group. It returns
// after the subscription is applied, so a broadcast emitted next is
// guaranteed to reach the subscriber.
func (h *Hub) Subscribe(connID, lobbyID string) {
	done := make(chan struct{})
	h.subscribe <- subscription{connID: connID, lobbyID: lobbyID, done: done}
	<-done
}

// BroadcastEvent sends a named event to every member of a lobby group.
func (h *Hub) BroadcastEvent(lobbyID, event string, data interface{}) {
	payload, err := encodeEnvelope(event, data)
	if err != nil {
		log.Printf("Failed to marshal %s broadcast: %v", event, err)
		return
	}
	h.outboundMsg <- outbound{lobbyID: lobbyID, payload: payload}
}

// SendEvent sends a named event to a single connection.
func (h *Hub) SendEvent(connID, event string, data interface{}) {
	payload, err := encodeEnvelope(event, data)
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", event, err)
		return
	}
	h.outboundMsg <- outbound{connID: connID, payload: payload}
}

func encodeEnvelope(event string, data interface{}) ([]byte, error) {
	env := Envelope{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	}
	return json.Marshal(env)
}

// registerClient adds a client to the connection set.
func (h *Hub) registerClient(client *Client) {
	h.clients[client.id] = client
	log.Printf("Client %s connected (total clients: %d)", client.id, len(h.clients))
}

// unregisterClient removes a client from the connection set and from any
// lobby group it joined.
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client.id]; !ok {
		return
	}

	delete(h.clients, client.id)

	for lobbyID, members := range h.lobbies {
		if members[client] {
			delete(members, client)
			if len(members) == 0 {
				delete(h.lobbies, lobbyID)
			}
		}
	}

	close(client.send)
	log.Printf("Client %s disconnected (remaining clients: %d)", client.id, len(h.clients))
}

// subscribeClient adds a client to a lobby's broadcast group.
func (h *Hub) subscribeClient(sub subscription) {
	defer close(sub.done)

	client, ok := h.clients[sub.connID]
	if !ok {
		return
	}

	if h.lobbies[sub.lobbyID] == nil {
		h.lobbies[sub.lobbyID] = make(map[*Client]bool)
	}
	h.lobbies[sub.lobbyID][client] = true
}

// dispatch delivers an outbound message to its group or single target.
func (h *Hub) dispatch(msg outbound) {
	if msg.connID != "" {
		if client, ok := h.clients[msg.connID]; ok {
			h.deliver(client, msg.payload)
		}
		return
	}

	for client := range h.lobbies[msg.lobbyID] {
		h.deliver(client, msg.payload)
	}
}

func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		// Client's send buffer is full, drop the connection.
		h.unregisterClient(client)
	}
}

// readPump pumps inbound messages from the connection to the handler.
func (c *Client) readPump() {
	defer func() {
		c.handler.HandleDisconnect(c.id)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			log.Printf("Client %s sent malformed message: %v", c.id, err)
			continue
		}

		c.handler.HandleMessage(c.id, env)
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
