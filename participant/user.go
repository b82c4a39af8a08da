package participant

import (
	"chat-hub/contract"
	"chat-hub/domain"

	"github.com/google/uuid"
)

// User is a plain participant: it talks and watches, never touching the hub state.
type User struct {
	id   uuid.UUID
	name string
	hub  contract.IHub
	settings
}

func NewUser(name string, hub contract.IHub, opts ...Option) *User {
	return &User{id: uuid.New(), name: name, hub: hub, settings: newSettings(opts)}
}

func (u *User) ID() uuid.UUID { return u.id }

func (u *User) Name() string { return u.name }

func (u *User) SendMessage(text string) error {
	return u.hub.SendMessage(u, text)
}

func (u *User) OnJoined(payload domain.NotificationPayload) {
	u.log.Debug("Received join", "recipient", u.name, "actor", payload.Actor.Name())
	u.report(u, domain.Joined, payload)
}

func (u *User) OnLeft(payload domain.NotificationPayload) {
	u.log.Debug("Received leave", "recipient", u.name, "actor", payload.Actor.Name())
	u.report(u, domain.Left, payload)
}

func (u *User) OnMessage(payload domain.NotificationPayload) {
	u.log.Debug("Received message", "recipient", u.name, "actor", payload.Actor.Name(), "content", payload.Text)
	u.report(u, domain.MessagePosted, payload)
}
