package participant

import (
	"chat-hub/contract"
	"chat-hub/domain"
)

// UserFactory builds plain participants bound to one hub.
type UserFactory struct {
	hub  contract.IHub
	opts []Option
}

func NewUserFactory(hub contract.IHub, opts ...Option) *UserFactory {
	return &UserFactory{hub: hub, opts: opts}
}

func (f *UserFactory) Create(name string) domain.Participant {
	return NewUser(name, f.hub, f.opts...)
}

// ChatBotFactory builds moderation agents bound to one hub.
type ChatBotFactory struct {
	hub  contract.IHub
	opts []Option
}

func NewChatBotFactory(hub contract.IHub, opts ...Option) *ChatBotFactory {
	return &ChatBotFactory{hub: hub, opts: opts}
}

func (f *ChatBotFactory) Create(name string) domain.Participant {
	return NewChatBot(name, f.hub, f.opts...)
}
