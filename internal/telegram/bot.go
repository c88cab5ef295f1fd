package telegram

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sportscal/internal/source"
)

const pollTimeout = 60

// Bot runs a long-polling Telegram transport. Incoming messages are
// published as transport-neutral source.Message values; replies go out
// through the Responder side of the same type.
type Bot struct {
	api         *tgbotapi.BotAPI
	messageChan chan source.Message
	log         *zap.Logger
	done        chan struct{}
}

func New(token string, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	log.Info("telegram bot authorized", zap.String("username", api.Self.UserName))

	return &Bot{
		api:         api,
		messageChan: make(chan source.Message, 100),
		log:         log,
		done:        make(chan struct{}),
	}, nil
}

func (b *Bot) MessageChan() <-chan source.Message {
	return b.messageChan
}

// Run polls for updates until Stop is called. Blocks; call in a goroutine.
func (b *Bot) Run() {
	b.registerCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("telegram bot polling for updates")
	for {
		select {
		case <-b.done:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.publish(update.Message)
		}
	}
}

func (b *Bot) Stop() {
	close(b.done)
	b.api.StopReceivingUpdates()
	b.log.Info("telegram bot stopped")
}

func (b *Bot) publish(msg *tgbotapi.Message) {
	out := source.Message{
		SourceType: source.SourceTypeTelegram,
		UserID:     strconv.FormatInt(msg.From.ID, 10),
		ChatID:     strconv.FormatInt(msg.Chat.ID, 10),
		SenderName: msg.From.UserName,
		Text:       msg.Text,
		Timestamp:  time.Unix(int64(msg.Date), 0),
	}

	select {
	case b.messageChan <- out:
	default:
		b.log.Warn("message channel full, dropping update",
			zap.String("user_id", out.UserID))
	}
}

func (b *Bot) registerCommands() {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "What this bot does"},
		tgbotapi.BotCommand{Command: "sports", Description: "Full sports calendar"},
		tgbotapi.BotCommand{Command: "tennis", Description: "Tennis events"},
		tgbotapi.BotCommand{Command: "football", Description: "Football events"},
		tgbotapi.BotCommand{Command: "customize", Description: "Build your own events"},
		tgbotapi.BotCommand{Command: "help", Description: "Usage help"},
	)
	if _, err := b.api.Request(cfg); err != nil {
		b.log.Warn("registering bot commands", zap.Error(err))
	}
}

// SendText implements source.Responder.
func (b *Bot) SendText(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing chat id %q: %w", chatID, err)
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// SendDocument implements source.Responder.
func (b *Bot) SendDocument(chatID string, doc source.Document) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing chat id %q: %w", chatID, err)
	}
	d := tgbotapi.NewDocument(id, tgbotapi.FileBytes{Name: doc.Filename, Bytes: doc.Data})
	d.Caption = doc.Caption
	if _, err := b.api.Send(d); err != nil {
		return fmt.Errorf("sending telegram document: %w", err)
	}
	return nil
}
