package source

import "time"

// SourceType identifies the transport a message arrived on
type SourceType string

const (
	SourceTypeTelegram SourceType = "telegram"
	SourceTypeWhatsApp SourceType = "whatsapp"
	SourceTypeCLI      SourceType = "cli"
)

// Message represents an inbound text message from any transport
type Message struct {
	SourceType SourceType
	UserID     string // stable per-user identifier within the source
	ChatID     string // destination for replies
	SenderName string
	Text       string
	Timestamp  time.Time
}

// Document is a rendered calendar payload sent back as a file attachment
type Document struct {
	Filename string
	MIMEType string
	Data     []byte
	Caption  string
}

// Responder delivers replies back to the chat a message came from.
// Each transport (Telegram, WhatsApp, CLI) provides its own implementation.
type Responder interface {
	SendText(chatID string, text string) error
	SendDocument(chatID string, doc Document) error
}
