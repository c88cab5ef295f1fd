package whatsapp

import (
	"context"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"

	"sportscal/internal/source"
)

// Client wraps a whatsmeow connection with an sqlite-backed device store.
type Client struct {
	WAClient  *whatsmeow.Client
	handler   *Handler
	container *sqlstore.Container
	log       *zap.Logger
}

func NewClient(handler *Handler, dbPath string, log *zap.Logger) (*Client, error) {
	dbLog := waLog.Stdout("Database", "ERROR", true)
	clientLog := waLog.Stdout("Client", "ERROR", true)

	container, err := sqlstore.New(context.Background(), "sqlite3", "file:"+dbPath+"?_foreign_keys=on", dbLog)
	if err != nil {
		return nil, fmt.Errorf("creating whatsapp device store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("getting device store: %w", err)
	}

	waClient := whatsmeow.NewClient(deviceStore, clientLog)

	c := &Client{
		WAClient:  waClient,
		handler:   handler,
		container: container,
		log:       log,
	}

	if handler != nil {
		waClient.AddEventHandler(handler.HandleEvent)
	}

	return c, nil
}

// Connect establishes the session, walking the QR pairing flow when the
// device has never been linked.
func (c *Client) Connect(ctx context.Context) error {
	if c.WAClient.Store.ID != nil {
		if err := c.WAClient.Connect(); err != nil {
			return fmt.Errorf("connecting to whatsapp: %w", err)
		}
		c.log.Info("whatsapp connected with stored session")
		return nil
	}

	qrChan, err := c.WAClient.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("getting QR channel: %w", err)
	}
	if err := c.WAClient.Connect(); err != nil {
		return fmt.Errorf("connecting to whatsapp: %w", err)
	}

	for evt := range qrChan {
		switch evt.Event {
		case "code":
			path, err := WriteQRPNG(evt.Code)
			if err != nil {
				c.log.Error("writing pairing QR code", zap.Error(err))
				continue
			}
			c.log.Info("scan the pairing QR code", zap.String("path", path))
		case "success":
			c.log.Info("whatsapp paired successfully")
			return nil
		case "timeout":
			return fmt.Errorf("whatsapp pairing timed out")
		}
	}
	return nil
}

func (c *Client) Disconnect() {
	c.WAClient.Disconnect()
	c.log.Info("whatsapp disconnected")
}

// SendText delivers a plain message to the JID in chatID.
func (c *Client) SendText(chatID, text string) error {
	jid, err := types.ParseJID(chatID)
	if err != nil {
		return fmt.Errorf("parsing chat JID %q: %w", chatID, err)
	}
	_, err = c.WAClient.SendMessage(context.Background(), jid, &waE2E.Message{
		Conversation: strPtr(text),
	})
	if err != nil {
		return fmt.Errorf("sending whatsapp message: %w", err)
	}
	return nil
}

// SendDocument uploads the calendar bytes and delivers them as a file
// attachment.
func (c *Client) SendDocument(chatID string, doc source.Document) error {
	jid, err := types.ParseJID(chatID)
	if err != nil {
		return fmt.Errorf("parsing chat JID %q: %w", chatID, err)
	}

	uploaded, err := c.WAClient.Upload(context.Background(), doc.Data, whatsmeow.MediaDocument)
	if err != nil {
		return fmt.Errorf("uploading document: %w", err)
	}

	_, err = c.WAClient.SendMessage(context.Background(), jid, &waE2E.Message{
		DocumentMessage: &waE2E.DocumentMessage{
			URL:           strPtr(uploaded.URL),
			DirectPath:    strPtr(uploaded.DirectPath),
			MediaKey:      uploaded.MediaKey,
			Mimetype:      strPtr(doc.MIMEType),
			FileEncSHA256: uploaded.FileEncSHA256,
			FileSHA256:    uploaded.FileSHA256,
			FileLength:    uint64Ptr(uploaded.FileLength),
			FileName:      strPtr(doc.Filename),
			Caption:       strPtr(doc.Caption),
		},
	})
	if err != nil {
		return fmt.Errorf("sending document: %w", err)
	}
	return nil
}

func strPtr(s string) *string    { return &s }
func uint64Ptr(n uint64) *uint64 { return &n }
