// Package notifier announces new signups to a chat webhook. The announcement
// is best effort: callers log failures and move on, a webhook outage must
// never fail a signup that already persisted.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hackcwru/signup/internal/domain"
	"github.com/hackcwru/signup/internal/httpx"
)

// Config holds the webhook endpoint and the bot identity shown in chat.
type Config struct {
	URL      string
	Channel  string
	Username string
	Icon     string
}

// Webhook posts signup announcements. An empty URL disables it.
type Webhook struct {
	cfg  Config
	http *http.Client
}

// New creates a Webhook.
func New(cfg Config, hc *http.Client) *Webhook {
	return &Webhook{cfg: cfg, http: hc}
}

// Announce posts a message for the profile to the webhook.
func (w *Webhook) Announce(ctx context.Context, profile *domain.Profile) error {
	if w.cfg.URL == "" {
		return nil
	}

	msg := domain.WebhookMessage{
		Channel:   w.cfg.Channel,
		Username:  w.cfg.Username,
		IconEmoji: w.cfg.Icon,
		Text: fmt.Sprintf("%s, a %s major from %s, has signed up!",
			profile.FirstName, profile.Major, profile.School.Name),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return httpx.Decode(httpx.StageNotify, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return httpx.Transport(httpx.StageNotify, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		return httpx.Transport(httpx.StageNotify, err)
	}
	defer resp.Body.Close()

	return httpx.CheckStatus(httpx.StageNotify, resp.StatusCode)
}
