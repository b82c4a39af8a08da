package services

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/repositories"
	"chat-hub/runtime"
)

type IChatService interface {
	Join(name string) (domain.Participant, error)
	Leave(p domain.Participant) error
	GetMessages(cursor *string) ([]repositories.DiskMessage, *string, error)
	Transcript() ([]repositories.DiskMessage, error)
}

// ChatService is what a driver talks to: it creates users and recalls what was said.
type ChatService struct {
	hub        *runtime.Hub
	users      contract.IFactory
	repository repositories.IMessageRepository
}

func NewChatService(hub *runtime.Hub, users contract.IFactory, repository repositories.IMessageRepository) *ChatService {
	return &ChatService{hub: hub, users: users, repository: repository}
}

// Join builds a user through the factory and adds it to the current chat.
func (s *ChatService) Join(name string) (domain.Participant, error) {
	p := s.users.Create(name)
	if err := s.hub.AddToChat(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ChatService) Leave(p domain.Participant) error {
	return s.hub.RemoveFromChat(p)
}

// GetMessages reads one page of the current session, newest first.
func (s *ChatService) GetMessages(cursor *string) ([]repositories.DiskMessage, *string, error) {
	return s.repository.GetMessages(s.hub.SessionID(), cursor)
}

// Transcript walks every page and returns the session oldest first.
func (s *ChatService) Transcript() ([]repositories.DiskMessage, error) {
	var all []repositories.DiskMessage
	var cursor *string
	for {
		page, next, err := s.GetMessages(cursor)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		cursor = next
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}
