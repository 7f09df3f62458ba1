package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// ContactRelay forwards contact form submissions to an external endpoint
// (typically a form-to-email service).
type ContactRelay struct {
	url    string
	client *http.Client
}

func NewContactRelay(url string, client *http.Client) *ContactRelay {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &ContactRelay{url: url, client: client}
}

// ContactMessage is a visitor's contact form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Send posts the message to the configured endpoint. Any 2xx status counts as
// delivered.
func (r *ContactRelay) Send(ctx context.Context, msg ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact relay: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("contact relay: status %d", resp.StatusCode)
	}
	return nil
}

func (a *App) handleContact(c echo.Context) error {
	var msg ContactMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, email, and message are required"})
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid email address"})
	}

	if err := a.contact.Send(c.Request().Context(), msg); err != nil {
		c.Logger().Errorf("contact relay: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "message could not be delivered"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
}
