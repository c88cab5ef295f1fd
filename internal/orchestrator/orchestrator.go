package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"sportscal/internal/calendar"
	"sportscal/internal/catalogue"
	"sportscal/internal/convo"
	"sportscal/internal/customize"
	"sportscal/internal/extract"
	"sportscal/internal/filter"
	"sportscal/internal/source"
)

const userQueueSize = 16

// Assistant is the free-form chat collaborator. Nil-able: without an API
// key the orchestrator falls back to canned replies.
type Assistant interface {
	Chat(ctx context.Context, userID, text string) (convo.Reply, error)
	Preferences(userID string) convo.Preferences
	Reset(userID string)
}

// Orchestrator turns inbound messages into replies and calendar files.
// Messages from the same user are processed strictly in arrival order;
// distinct users run concurrently on their own queues.
type Orchestrator struct {
	extractor  extract.Extractor
	customizer *customize.Customizer
	assistant  Assistant
	router     *KeywordRouter
	log        *zap.Logger
	tempDir    string

	mu         sync.Mutex
	responders map[source.SourceType]source.Responder
	queues     map[string]chan source.Message

	chatTurn atomic.Uint64

	ctx        context.Context
	cancel     context.CancelFunc
	dispatchWg sync.WaitGroup
	wg         sync.WaitGroup
}

func New(extractor extract.Extractor, customizer *customize.Customizer, assistant Assistant, tempDir string, log *zap.Logger) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		extractor:  extractor,
		customizer: customizer,
		assistant:  assistant,
		router:     NewKeywordRouter(),
		log:        log,
		tempDir:    tempDir,
		responders: make(map[source.SourceType]source.Responder),
		queues:     make(map[string]chan source.Message),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// RegisterResponder attaches the reply sink for one transport.
func (o *Orchestrator) RegisterResponder(st source.SourceType, r source.Responder) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.responders[st] = r
}

// Start consumes messages from msgChan until Stop is called or the
// channel closes.
func (o *Orchestrator) Start(msgChan <-chan source.Message) {
	o.dispatchWg.Add(1)
	go o.dispatchLoop(msgChan)
	o.log.Info("orchestrator started")
}

// Stop drains the per-user queues and waits for in-flight work.
func (o *Orchestrator) Stop() {
	o.cancel()
	o.dispatchWg.Wait()

	o.mu.Lock()
	for _, q := range o.queues {
		close(q)
	}
	o.queues = make(map[string]chan source.Message)
	o.mu.Unlock()

	o.wg.Wait()
	o.log.Info("orchestrator stopped")
}

// dispatchLoop fans messages out to per-user serial queues so one user's
// messages never interleave while different users proceed in parallel.
func (o *Orchestrator) dispatchLoop(msgChan <-chan source.Message) {
	defer o.dispatchWg.Done()
	for {
		select {
		case <-o.ctx.Done():
			return
		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			// A full queue must never stall dispatch for other users;
			// drop like the transports do when their channels back up.
			select {
			case o.userQueue(msg.UserID) <- msg:
			default:
				o.log.Warn("user queue full, dropping message",
					zap.String("user_id", msg.UserID))
			}
		}
	}
}

func (o *Orchestrator) userQueue(userID string) chan source.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	q, ok := o.queues[userID]
	if !ok {
		q = make(chan source.Message, userQueueSize)
		o.queues[userID] = q
		o.wg.Add(1)
		go o.userLoop(q)
	}
	return q
}

func (o *Orchestrator) userLoop(q chan source.Message) {
	defer o.wg.Done()
	for msg := range q {
		if err := o.Handle(o.ctx, msg); err != nil {
			o.log.Error("handling message failed",
				zap.String("user_id", msg.UserID),
				zap.String("source", string(msg.SourceType)),
				zap.Error(err))
		}
	}
}

// Handle processes one message end to end. Exposed for transports that
// manage their own delivery loop and for tests.
func (o *Orchestrator) Handle(ctx context.Context, msg source.Message) error {
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		return o.HandleCommand(ctx, msg)
	}

	if o.customizer.Active(ctx, msg.UserID) {
		return o.advanceCustomization(ctx, msg)
	}

	routed := o.router.Route(text)
	o.log.Debug("routed message",
		zap.String("user_id", msg.UserID),
		zap.String("intent", string(routed.Intent)),
		zap.String("reasoning", routed.Reasoning))

	switch routed.Intent {
	case IntentCustomize:
		res, err := o.customizer.Start(ctx, msg.UserID)
		if err != nil {
			return err
		}
		return o.reply(msg, res.Prompt)

	case IntentSports:
		return o.sendFilteredCalendar(ctx, msg, text)

	case IntentCalendar:
		return o.sendFullCalendar(msg)

	default:
		return o.chat(ctx, msg, text)
	}
}

// HandleCommand serves the slash commands shared by both transports.
func (o *Orchestrator) HandleCommand(ctx context.Context, msg source.Message) error {
	cmd := strings.ToLower(strings.TrimPrefix(strings.Fields(msg.Text)[0], "/"))
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}

	switch cmd {
	case "start":
		return o.reply(msg, welcomeMessage)
	case "help":
		return o.reply(msg, helpMessage)
	case "sports":
		return o.sendFullCalendar(msg)
	case "tennis":
		return o.sendPreset(msg, filter.Filter{
			Sports: []string{"tennis"}, Filename: "tennis_events", Summary: "Tennis events",
		})
	case "football":
		return o.sendPreset(msg, filter.Filter{
			Sports: []string{"football"}, Filename: "football_events", Summary: "Football events",
		})
	case "customize":
		res, err := o.customizer.Start(ctx, msg.UserID)
		if err != nil {
			return err
		}
		return o.reply(msg, res.Prompt)
	case "cancel":
		if err := o.customizer.Cancel(ctx, msg.UserID); err != nil {
			o.log.Warn("cancelling session", zap.String("user_id", msg.UserID), zap.Error(err))
		}
		return o.reply(msg, "Okay, customization cancelled. Ask me for sports events any time!")
	default:
		return o.reply(msg, "I don't know that command. Try /help.")
	}
}

func (o *Orchestrator) advanceCustomization(ctx context.Context, msg source.Message) error {
	res, err := o.customizer.Advance(ctx, msg.UserID, msg.Text)
	if errors.Is(err, customize.ErrNoEventsCreated) {
		return o.reply(msg, "No events were created. Say \"customize\" to try again!")
	}
	if err != nil {
		return err
	}

	if !res.Done {
		return o.reply(msg, res.Prompt)
	}

	data, err := calendar.RenderCustom(res.Events)
	if err != nil {
		o.log.Error("rendering custom calendar", zap.String("user_id", msg.UserID), zap.Error(err))
		return o.reply(msg, "Something went wrong building your calendar. Say \"customize\" to try again.")
	}
	return o.sendDocument(msg, "my_sports_events.ics", data,
		fmt.Sprintf("Here is your calendar with %d custom event(s)!", len(res.Events)))
}

func (o *Orchestrator) sendFilteredCalendar(ctx context.Context, msg source.Message, text string) error {
	f, err := o.extractor.Extract(ctx, text)
	if err != nil {
		// The fallback wrapper never errors; a bare extractor might.
		return fmt.Errorf("extracting filter: %w", err)
	}
	return o.sendPreset(msg, f)
}

func (o *Orchestrator) sendFullCalendar(msg source.Message) error {
	data, err := calendar.Render(catalogue.Events(), nil)
	if err != nil {
		return fmt.Errorf("rendering full calendar: %w", err)
	}
	return o.sendDocument(msg, "sports_events.ics", data, "All upcoming sports events!")
}

func (o *Orchestrator) sendPreset(msg source.Message, f filter.Filter) error {
	f.Normalize()
	data, err := calendar.Render(catalogue.Events(), &f)
	if errors.Is(err, calendar.ErrNoEvents) {
		return o.reply(msg, "I couldn't find any events matching that. Try \"tennis\", \"football\" or a team like Barcelona!")
	}
	if err != nil {
		return fmt.Errorf("rendering calendar: %w", err)
	}

	caption := f.Summary
	if caption == "" {
		caption = "Your sports calendar"
	}
	return o.sendDocument(msg, f.Filename+".ics", data, caption)
}

var cannedReplies = []string{
	"I'm your sports calendar bot! Ask me for tennis or football events, or say \"customize\" to build your own.",
	"Try asking for \"tennis finals\" or \"Barcelona games\" and I'll send you a calendar file.",
	"Want a calendar? Tell me a sport, a team or a tournament. /help shows everything I can do.",
}

func (o *Orchestrator) chat(ctx context.Context, msg source.Message, text string) error {
	if o.assistant == nil {
		return o.reply(msg, o.canned())
	}

	reply, err := o.assistant.Chat(ctx, msg.UserID, text)
	if err != nil {
		o.log.Warn("assistant unavailable, using canned reply",
			zap.String("user_id", msg.UserID), zap.Error(err))
		return o.reply(msg, o.canned())
	}

	if reply.Message != "" {
		if err := o.reply(msg, reply.Message); err != nil {
			return err
		}
	} else if !reply.ReadyToGenerate {
		// A parseable reply with no text would otherwise leave the
		// user hanging.
		return o.reply(msg, o.canned())
	}

	if reply.ReadyToGenerate {
		prefs := o.assistant.Preferences(msg.UserID)
		f := prefs.ToFilter()
		o.assistant.Reset(msg.UserID)
		return o.sendPreset(msg, f)
	}
	return nil
}

func (o *Orchestrator) canned() string {
	n := o.chatTurn.Add(1)
	return cannedReplies[int(n-1)%len(cannedReplies)]
}

func (o *Orchestrator) reply(msg source.Message, text string) error {
	r, err := o.responder(msg.SourceType)
	if err != nil {
		return err
	}
	return r.SendText(msg.ChatID, text)
}

func (o *Orchestrator) sendDocument(msg source.Message, filename string, data []byte, caption string) error {
	if o.tempDir != "" {
		if path, err := calendar.WriteTemp(o.tempDir, filename, data, 0, o.log); err != nil {
			o.log.Warn("writing debug calendar copy", zap.Error(err))
		} else {
			o.log.Debug("wrote debug calendar copy", zap.String("path", path))
		}
	}

	r, err := o.responder(msg.SourceType)
	if err != nil {
		return err
	}
	return r.SendDocument(msg.ChatID, source.Document{
		Filename: filename,
		MIMEType: "text/calendar",
		Data:     data,
		Caption:  caption,
	})
}

func (o *Orchestrator) responder(st source.SourceType) (source.Responder, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	r, ok := o.responders[st]
	if !ok {
		return nil, fmt.Errorf("no responder registered for source %q", st)
	}
	return r, nil
}

const welcomeMessage = `Welcome to the Sports Calendar Bot!

Tell me what you're into and I'll send you a calendar file you can import anywhere:
- "tennis finals" or "US Open"
- "Barcelona games" or "la liga"
- "customize" to build your own events step by step

Commands: /sports /tennis /football /customize /help`

const helpMessage = `Here's what I can do:

/sports - full calendar with every event
/tennis - tennis events only
/football - football events only
/customize - build your own events step by step
/cancel - abandon the current customization

Or just talk to me: "send me Barcelona matches", "tennis semifinals", "give me la liga games".`
