package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// ChatRelay forwards visitor messages to an external assistant webhook and
// extracts the reply from whatever shape the webhook answers with.
type ChatRelay struct {
	url    string
	client *http.Client
}

func NewChatRelay(url string, client *http.Client) *ChatRelay {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ChatRelay{url: url, client: client}
}

// NewChatSessionID returns a fresh per-visitor session identifier: a UUID with
// the dashes stripped.
func NewChatSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

type chatPayload struct {
	SessionID string `json:"sessionId"`
	Action    string `json:"action"`
	ChatInput string `json:"chatInput"`
}

// Send posts the visitor's message to the webhook and returns the assistant's
// reply text.
func (r *ChatRelay) Send(ctx context.Context, sessionID, text string) (string, error) {
	body, err := json.Marshal(chatPayload{
		SessionID: sessionID,
		Action:    "sendMessage",
		ChatInput: text,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat webhook: status %d", resp.StatusCode)
	}
	return extractReply(raw), nil
}

// extractReply digs the reply text out of the webhook response. Webhook
// integrations answer in different shapes: an object with one of several
// well-known keys, a one-element array wrapping such an object, or plain
// text. Unknown shapes fall back to the raw body.
func extractReply(raw []byte) string {
	var node any
	if err := json.Unmarshal(raw, &node); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if arr, ok := node.([]any); ok && len(arr) == 1 {
		node = arr[0]
	}
	if obj, ok := node.(map[string]any); ok {
		for _, key := range []string{"output", "reply", "message", "answer", "text"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	if s, ok := node.(string); ok {
		return s
	}
	return strings.TrimSpace(string(raw))
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

func (a *App) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.SessionID == "" {
		req.SessionID = NewChatSessionID()
	}

	reply, err := a.chat.Send(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		c.Logger().Errorf("chat relay: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "assistant unavailable"})
	}
	return c.JSON(http.StatusOK, chatResponse{SessionID: req.SessionID, Reply: reply})
}

// chatUpgrader keeps gorilla's default origin check: browser connections must
// come from the same host, since the relay endpoint is CSRF-exempt.
var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleChatSocket runs the chat over a websocket: each text frame from the
// visitor is relayed to the webhook, each reply written back as a text frame.
// The session identifier is fixed for the lifetime of the connection.
func (a *App) handleChatSocket(c echo.Context) error {
	conn, err := chatUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sessionID := NewChatSessionID()
	if greeting := a.Config.ChatGreeting; greeting != "" {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(greeting)); err != nil {
			return nil
		}
	}

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		if mt != websocket.TextMessage {
			continue
		}
		text := strings.TrimSpace(string(msg))
		if text == "" {
			continue
		}
		reply, err := a.chat.Send(c.Request().Context(), sessionID, text)
		if err != nil {
			c.Logger().Errorf("chat relay: %v", err)
			reply = "Sorry, the assistant is unavailable right now."
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			return nil
		}
	}
}
