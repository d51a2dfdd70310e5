package chatws

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/Aguti1902/appfitness-backend/internal/services"
)

// Hub fans coach replies out to a user's open connections. The coach
// is a program, not another user, so every reply goes back to the
// sender only.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	replies    chan *reply
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type interpreter interface {
	HandleMessage(ctx context.Context, userID int64, message string) services.ChatReply
}

type Message struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type reply struct {
	userID  string
	message *Message
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		replies:    make(chan *reply, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.userID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.clients, client.userID)
			}
		case r := <-h.replies:
			h.deliver(r)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) deliver(r *reply) {
	encoded, err := json.Marshal(r.message)
	if err != nil {
		log.Printf("chat hub encode message: %v", err)
		return
	}
	h.sendToUser(r.userID, encoded)
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	set, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range set {
		select {
		case client.send <- payload:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

func (c *Client) ReadPump(service interpreter) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	userID, err := strconv.ParseInt(c.userID, 10, 64)
	if err != nil {
		writeError(c, "invalid user")
		return
	}

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type    string `json:"type"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			writeError(c, "invalid message payload")
			continue
		}
		if incoming.Type != "message" {
			writeError(c, "unsupported message type")
			continue
		}
		if strings.TrimSpace(incoming.Content) == "" {
			writeError(c, "empty message")
			continue
		}

		coachReply := service.HandleMessage(context.Background(), userID, incoming.Content)

		c.hub.replies <- &reply{
			userID: c.userID,
			message: &Message{
				Type:      coachReply.Type,
				Content:   coachReply.Message,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func writeError(client *Client, message string) {
	payload, err := json.Marshal(Message{
		Type:      "error",
		Content:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	select {
	case client.send <- payload:
	default:
		client.hub.Unregister(client)
	}
}
