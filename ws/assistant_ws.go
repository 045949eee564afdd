package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/cyber3201/foodApp/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans events out to a user's open websocket connections. The server
// pushes assistant replies and order-status changes; client frames are
// ignored (sending goes through the REST endpoints).
type Hub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of conns
	broadcast  chan push
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type push struct {
	UserID  uint
	Payload any
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan push),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// PushToUser queues an event for every open connection of the user.
// Implements services.EventPusher.
func (h *Hub) PushToUser(userID uint, payload any) {
	h.broadcast <- push{UserID: userID, Payload: payload}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case p := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[p.UserID] {
				if err := conn.WriteJSON(p.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[p.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/assistant
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the connection's read side alive until the peer goes away.
func (h *Hub) drain(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
