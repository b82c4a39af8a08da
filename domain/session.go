package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Session is the live state of one conversation.
// It is not safe for concurrent use, the hub owning it serializes access.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	members   []Participant
	log       []Message
}

func NewSession(id uuid.UUID, at time.Time) *Session {
	return &Session{ID: id, CreatedAt: at}
}

func (s *Session) Contains(p Participant) bool {
	return lo.Contains(s.members, p)
}

// AddMember appends p and reports false when p was already a member.
func (s *Session) AddMember(p Participant) bool {
	if s.Contains(p) {
		return false
	}
	s.members = append(s.members, p)
	return true
}

// RemoveMember evicts p while keeping the order of the others.
func (s *Session) RemoveMember(p Participant) bool {
	idx := lo.IndexOf(s.members, p)
	if idx < 0 {
		return false
	}
	s.members = append(s.members[:idx:idx], s.members[idx+1:]...)
	return true
}

// Append numbers the message after the last one and returns it as stored.
func (s *Session) Append(message Message) Message {
	message.Seq = uint64(len(s.log)) + 1
	s.log = append(s.log, message)
	return message
}

// Members returns a copy of the membership in join order.
func (s *Session) Members() []Participant {
	return append([]Participant(nil), s.members...)
}

// Messages returns a copy of the log in send order.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.log...)
}
