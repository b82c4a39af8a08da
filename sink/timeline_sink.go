package sink

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"fmt"
	"time"
)

type Entry struct {
	Kind  domain.NotificationKind
	Actor string
	Text  string
	At    time.Time
}

// Timeline keeps, in memory, what happened in the chat in emission order.
type Timeline struct {
	Entries []Entry
}

func NewTimeline() *Timeline {
	return &Timeline{
		Entries: nil,
	}
}

func (t *Timeline) Consume(e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ParticipantJoined:
		t.Entries = append(t.Entries, Entry{Kind: domain.Joined, Actor: evt.Name, At: evt.At})
	case event.ParticipantLeft:
		t.Entries = append(t.Entries, Entry{Kind: domain.Left, Actor: evt.Name, At: evt.At})
	case event.MessagePosted:
		t.Entries = append(t.Entries, Entry{Kind: domain.MessagePosted, Actor: evt.Author, Text: evt.Content, At: evt.At})
	default:
		return fmt.Errorf("%w: %T", errors.ErrInvalidPayload, e)
	}
	return nil
}
