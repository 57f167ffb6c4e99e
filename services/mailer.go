package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Mailer relays contact-form messages to the site owner through the Resend
// API.
type Mailer struct {
	apiKey   string
	from     string
	to       string
	endpoint string
	client   *http.Client
}

func NewMailer(apiKey, from, to string) *Mailer {
	return &Mailer{
		apiKey:   apiKey,
		from:     from,
		to:       to,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SendContactMessage forwards a visitor's message, with their address set as
// reply-to so answering from the inbox just works.
func (m *Mailer) SendContactMessage(ctx context.Context, name, email, message string) error {
	if m.apiKey == "" {
		return fmt.Errorf("mail provider is not configured")
	}

	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: email,
		Subject: fmt.Sprintf("Portfolio contact from %s", name),
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
