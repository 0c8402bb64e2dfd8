package domain

// WebhookMessage is the chat webhook payload announcing a signup. It is a
// projection of a Profile and has no lifecycle of its own.
type WebhookMessage struct {
	Channel   string `json:"channel"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	IconEmoji string `json:"icon_emoji"`
}
