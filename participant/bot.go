package participant

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/moderation"
	"fmt"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// ForbiddenWord is what the default policy bans.
const ForbiddenWord = "cat"

// ChatBot is a moderation agent. It removes whoever breaks its policy and says why.
type ChatBot struct {
	id   uuid.UUID
	name string
	hub  contract.IHub
	settings
}

func NewChatBot(name string, hub contract.IHub, opts ...Option) *ChatBot {
	return &ChatBot{id: uuid.New(), name: name, hub: hub, settings: newSettings(opts)}
}

func (b *ChatBot) ID() uuid.UUID { return b.id }

func (b *ChatBot) Name() string { return b.name }

func (b *ChatBot) SendMessage(text string) error {
	return b.hub.SendMessage(b, text)
}

func (b *ChatBot) OnJoined(payload domain.NotificationPayload) {
	b.report(b, domain.Joined, payload)
}

func (b *ChatBot) OnLeft(payload domain.NotificationPayload) {
	b.report(b, domain.Left, payload)
}

// OnMessage re-enters the hub: the offender is removed first, then the announcement is sent.
// Offenders may be moderation agents too.
func (b *ChatBot) OnMessage(payload domain.NotificationPayload) {
	b.report(b, domain.MessagePosted, payload)
	word, ok := b.policy.Violation(payload.Text)
	if !ok {
		return
	}

	info := whatlanggo.Detect(payload.Text)
	b.log.Warn("Forbidden word",
		"bot", b.name,
		"author", payload.Actor.Name(),
		"word", word,
		"lang", info.Lang.Iso6391())

	if err := b.hub.RemoveFromChat(payload.Actor); err != nil {
		// Usually another agent was faster
		b.log.Debug("Removal skipped", "bot", b.name, "author", payload.Actor.Name(), "error", err)
		return
	}
	if err := b.SendMessage(b.announcement(word)); err != nil {
		b.log.Error("Announcement failed", "bot", b.name, "error", err)
	}
}

// announcement masks the word when the policy can, so it never trips another agent.
func (b *ChatBot) announcement(word string) string {
	if censorer, ok := b.policy.(moderation.Censorer); ok {
		word, _ = censorer.Censor(word)
	}
	return fmt.Sprintf("Word %s is forbidden", word)
}
