// Package ws pushes chat messages to connected portals. REST remains
// the write path; the socket only streams what lands in a room, so a
// client can swap its polling subscription for this feed unchanged.
package ws

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // roomID -> connections
	broadcast  chan broadcastMsg
	register   chan subscription
	unregister chan subscription
	stop       chan struct{}
	mu         sync.Mutex
	service    *services.ChatService
	log        *zap.Logger
}

type subscription struct {
	Conn   *websocket.Conn
	RoomID uint
	UserID uint
}

type broadcastMsg struct {
	RoomID  uint
	Message *entity.Message
}

func NewChatHub(service *services.ChatService, log *zap.Logger) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMsg),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		stop:       make(chan struct{}),
		service:    service,
		log:        log,
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = make(map[uint]map[*websocket.Conn]bool)
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *ChatHub) Stop() {
	close(h.stop)
}

// Broadcast pushes a stored message to everyone in its room. The REST
// send handler calls this so socket listeners see REST-sent messages.
func (h *ChatHub) Broadcast(msg *entity.Message) {
	select {
	case h.broadcast <- broadcastMsg{RoomID: msg.ChatID, Message: msg}:
	case <-h.stop:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/chat/:roomID
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomID64, err := strconv.ParseUint(c.Param("roomID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad room id"})
		return
	}
	roomID := uint(roomID64)
	userID := utils.CurrentUserID(c)

	if _, err := h.service.CanAccess(userID, roomID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{Conn: conn, RoomID: roomID, UserID: userID}
	select {
	case h.register <- sub:
	case <-h.stop:
		conn.Close()
		return
	}
	go h.listen(sub)
}

func (h *ChatHub) listen(sub subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.stop:
			sub.Conn.Close()
		}
	}()

	for {
		_, raw, err := sub.Conn.ReadMessage()
		if err != nil {
			return
		}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			h.log.Warn("bad ws payload", zap.Error(err))
			continue
		}

		// sender comes from the token, never the frame
		msg, err := h.service.Send(sub.RoomID, sub.UserID, payload.Message)
		if err != nil {
			h.log.Warn("ws send failed", zap.Error(err))
			continue
		}
		h.Broadcast(msg)
	}
}
