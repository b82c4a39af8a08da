package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/participant"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// AddBotCommand makes the hub inject a moderation agent instead of broadcasting the text.
	AddBotCommand = "addBot"
	BotName       = "Angry Bot"
)

// Hub is the mediator between participants.
//
// Every operation runs on the caller's stack, reactions included. The mutex only
// guards session and registry reads and writes; it is never held while a reaction
// or a sink runs, so a reaction may call back into the hub.
type Hub struct {
	mu         sync.Mutex
	log        *slog.Logger
	session    *domain.Session
	registry   *Registry
	botFactory contract.IFactory
	sinks      []contract.EventSink
	now        func() time.Time
}

type Option func(h *Hub)

// WithBotFactory replaces the factory used by AddBotCommand.
// The builder receives the hub so the produced agents are bound to it.
func WithBotFactory(build func(hub contract.IHub) contract.IFactory) Option {
	return func(h *Hub) {
		h.botFactory = build(h)
	}
}

func WithSinks(sinks ...contract.EventSink) Option {
	return func(h *Hub) {
		h.sinks = append(h.sinks, sinks...)
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Hub) {
		h.now = now
	}
}

func NewHub(log *slog.Logger, opts ...Option) *Hub {
	h := &Hub{
		log:      log,
		registry: NewRegistry(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.botFactory == nil {
		h.botFactory = participant.NewChatBotFactory(h, participant.WithLogger(log))
	}
	return h
}

// CreateChat starts a new empty session, forgetting members and subscriptions of the previous one.
func (h *Hub) CreateChat() {
	h.mu.Lock()
	h.session = domain.NewSession(uuid.New(), h.now())
	h.registry.Reset()
	id := h.session.ID
	h.mu.Unlock()

	h.log.Info("Chat created", "session", id)
}

// AddToChat tells the current members about p, then makes p a member subscribed to every kind.
// p itself does not hear about its own arrival.
func (h *Hub) AddToChat(p domain.Participant) error {
	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		return errors.ErrChatNotCreated
	}
	if h.session.Contains(p) {
		h.mu.Unlock()
		return fmt.Errorf("%w: %q", errors.ErrDuplicateParticipant, p.Name())
	}
	subscribers := h.registry.Snapshot(domain.Joined)
	h.mu.Unlock()

	h.broadcast(domain.Joined, subscribers, domain.NotificationPayload{Actor: p}, nil)

	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		return errors.ErrChatNotCreated
	}
	// A join reaction already added p, that nested call did the bookkeeping
	if !h.session.AddMember(p) {
		h.mu.Unlock()
		return nil
	}
	h.registry.SubscribeAll(p)
	joined := event.ParticipantJoined{
		Session:       h.session.ID,
		ParticipantID: p.ID(),
		Name:          p.Name(),
		At:            h.now(),
	}
	h.mu.Unlock()

	h.log.Debug("Participant joined", "participant", p.Name(), "id", p.ID())
	h.emit(joined)
	return nil
}

// RemoveFromChat unsubscribes p from every kind, evicts it, then tells the remaining members.
// Log entries sent by p are kept.
func (h *Hub) RemoveFromChat(p domain.Participant) error {
	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		return errors.ErrChatNotCreated
	}
	if !h.session.Contains(p) {
		h.mu.Unlock()
		return fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, p.Name())
	}
	h.registry.UnsubscribeAll(p)
	h.session.RemoveMember(p)
	subscribers := h.registry.Snapshot(domain.Left)
	left := event.ParticipantLeft{
		Session:       h.session.ID,
		ParticipantID: p.ID(),
		Name:          p.Name(),
		At:            h.now(),
	}
	h.mu.Unlock()

	h.log.Debug("Participant left", "participant", p.Name(), "id", p.ID())
	h.emit(left)
	h.broadcast(domain.Left, subscribers, domain.NotificationPayload{Actor: p}, nil)
	return nil
}

// SendMessage logs the message and delivers it to every subscriber but the sender.
// AddBotCommand is logged too, but consumed: a moderation agent joins instead.
func (h *Hub) SendMessage(from domain.Participant, text string) error {
	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		return errors.ErrChatNotCreated
	}
	if !h.session.Contains(from) {
		h.mu.Unlock()
		return fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, from.Name())
	}
	message := domain.Message{
		ID:        uuid.New(),
		Sender:    from,
		Content:   text,
		CreatedAt: h.now(),
	}
	message = h.session.Append(message)
	posted := event.MessagePosted{
		ID:       message.ID,
		Session:  h.session.ID,
		AuthorID: from.ID(),
		Author:   from.Name(),
		Content:  text,
		Seq:      message.Seq,
		At:       message.CreatedAt,
	}
	var subscribers []domain.Participant
	if text != AddBotCommand {
		subscribers = h.registry.Snapshot(domain.MessagePosted)
	}
	h.mu.Unlock()

	h.emit(posted)
	if text == AddBotCommand {
		return h.addBot(from)
	}
	h.broadcast(domain.MessagePosted, subscribers, domain.NotificationPayload{Actor: from, Text: text}, from)
	return nil
}

func (h *Hub) addBot(requester domain.Participant) error {
	bot := h.botFactory.Create(BotName)

	h.mu.Lock()
	h.registry.Subscribe(domain.MessagePosted, bot)
	h.mu.Unlock()

	if err := h.AddToChat(bot); err != nil {
		h.mu.Lock()
		h.registry.Unsubscribe(domain.MessagePosted, bot)
		h.mu.Unlock()
		return err
	}
	h.log.Info("Moderation agent added", "requester", requester.Name(), "bot", bot.Name(), "id", bot.ID())
	return nil
}

// broadcast delivers to a snapshot taken before any reaction runs.
// A subscriber removed by an earlier reaction is skipped when its turn comes,
// and participants added meanwhile are not part of the snapshot.
func (h *Hub) broadcast(kind domain.NotificationKind, subscribers []domain.Participant,
	payload domain.NotificationPayload, sender domain.Participant) {
	for _, s := range subscribers {
		if s == sender {
			continue
		}
		if !h.isSubscribed(kind, s) {
			h.log.Debug("Skipping unsubscribed participant", "kind", kind, "participant", s.Name())
			continue
		}
		switch kind {
		case domain.Joined:
			s.OnJoined(payload)
		case domain.Left:
			s.OnLeft(payload)
		case domain.MessagePosted:
			s.OnMessage(payload)
		}
	}
}

func (h *Hub) isSubscribed(kind domain.NotificationKind, p domain.Participant) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.IsSubscribed(kind, p)
}

// emit hands the event to every sink. Sink failures never fail the hub operation.
func (h *Hub) emit(e event.DomainEvent) {
	for _, sink := range h.sinks {
		if err := sink.Consume(e); err != nil {
			h.log.Error("Sink failed", "error", err, "session", e.SessionID())
		}
	}
}

// SessionID returns uuid.Nil until CreateChat is called.
func (h *Hub) SessionID() uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return uuid.Nil
	}
	return h.session.ID
}

func (h *Hub) Members() []domain.Participant {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return nil
	}
	return h.session.Members()
}

func (h *Hub) Messages() []domain.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return nil
	}
	return h.session.Messages()
}

func (h *Hub) Subscribers(kind domain.NotificationKind) []domain.Participant {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Snapshot(kind)
}
