//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
)

// IHub is the mediator every participant talks through.
type IHub interface {
	CreateChat()
	AddToChat(p domain.Participant) error
	RemoveFromChat(p domain.Participant) error
	SendMessage(from domain.Participant, text string) error
}

// IFactory builds participants bound to one hub.
type IFactory interface {
	Create(name string) domain.Participant
}

// EventSink consumes facts emitted by the hub.
// It runs on the caller's stack and must not call back into the hub.
type EventSink interface {
	Consume(e event.DomainEvent) error
}

// Reporter is the presentation side of a reaction.
type Reporter interface {
	Report(recipient domain.Participant, kind domain.NotificationKind, payload domain.NotificationPayload)
}
