package whatsapp

import (
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"

	"sportscal/internal/source"
)

// Handler turns incoming WhatsApp events into transport-neutral messages.
type Handler struct {
	messageChan chan source.Message
	log         *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{
		messageChan: make(chan source.Message, 100),
		log:         log,
	}
}

func (h *Handler) MessageChan() <-chan source.Message {
	return h.messageChan
}

func (h *Handler) HandleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		h.handleMessage(v)
	}
}

func (h *Handler) handleMessage(msg *events.Message) {
	text := extractText(msg)
	if text == "" {
		return
	}

	// Direct messages only; the bot has no business in groups.
	if msg.Info.IsGroup {
		return
	}
	if msg.Info.IsFromMe {
		return
	}

	sender := msg.Info.Sender
	h.log.Debug("whatsapp message received",
		zap.String("sender", sender.User))

	select {
	case h.messageChan <- source.Message{
		SourceType: source.SourceTypeWhatsApp,
		UserID:     sender.User,
		ChatID:     msg.Info.Chat.String(),
		SenderName: msg.Info.PushName,
		Text:       text,
		Timestamp:  msg.Info.Timestamp,
	}:
	default:
		h.log.Warn("message channel full, dropping message",
			zap.String("sender", sender.User))
	}
}

func extractText(msg *events.Message) string {
	m := msg.Message
	if m == nil {
		return ""
	}

	if m.GetConversation() != "" {
		return m.GetConversation()
	}

	if ext := m.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}

	return ""
}
