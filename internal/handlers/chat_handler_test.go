package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Aguti1902/appfitness-backend/internal/services"
	chatws "github.com/Aguti1902/appfitness-backend/internal/websocket"
)

type stubChatInterpreter struct {
	reply       services.ChatReply
	lastUserID  int64
	lastMessage string
}

func (s *stubChatInterpreter) HandleMessage(_ context.Context, userID int64, message string) services.ChatReply {
	s.lastUserID = userID
	s.lastMessage = message
	return s.reply
}

func chatTestApp(service *stubChatInterpreter) *fiber.App {
	handler := NewChatHandler(service, chatws.NewHub(), "secret")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/chat/message", handler.SendMessage)
	return app
}

func TestSendMessageReturnsReply(t *testing.T) {
	service := &stubChatInterpreter{
		reply: services.ChatReply{Type: services.ReplyTypeChat, Message: "¡Hola!"},
	}
	app := chatTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message",
		strings.NewReader(`{"message":"hola"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastUserID != 42 || service.lastMessage != "hola" {
		t.Fatalf("unexpected call: user=%d message=%q", service.lastUserID, service.lastMessage)
	}

	var body struct {
		Reply services.ChatReply `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Reply.Type != services.ReplyTypeChat || body.Reply.Message != "¡Hola!" {
		t.Fatalf("unexpected reply %+v", body.Reply)
	}
}

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	app := chatTestApp(&stubChatInterpreter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message",
		strings.NewReader(`{"message":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
