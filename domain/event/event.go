package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact the hub emits to its sinks once the session changed.
type DomainEvent interface {
	SessionID() uuid.UUID
}

type ParticipantJoined struct {
	Session       uuid.UUID
	ParticipantID uuid.UUID
	Name          string
	At            time.Time
}

func (p ParticipantJoined) SessionID() uuid.UUID {
	return p.Session
}

type ParticipantLeft struct {
	Session       uuid.UUID
	ParticipantID uuid.UUID
	Name          string
	At            time.Time
}

func (p ParticipantLeft) SessionID() uuid.UUID {
	return p.Session
}

type MessagePosted struct {
	ID       uuid.UUID
	Session  uuid.UUID
	AuthorID uuid.UUID
	Author   string
	Content  string
	Seq      uint64
	At       time.Time
}

func (m MessagePosted) SessionID() uuid.UUID {
	return m.Session
}
