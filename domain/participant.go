// Package domain contains core concepts of the chat system.
// This file defines Participant entities and the notifications they react to.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/google/uuid"

// Participant is anything that can talk through the hub.
// Two participants are the same only if they are the same value; names may collide.
type Participant interface {
	ID() uuid.UUID
	Name() string
	SendMessage(text string) error
	OnJoined(payload NotificationPayload)
	OnLeft(payload NotificationPayload)
	OnMessage(payload NotificationPayload)
}

type NotificationKind int

const (
	Joined NotificationKind = iota
	Left
	MessagePosted
)

// NotificationKinds lists every kind in registry order.
var NotificationKinds = []NotificationKind{Joined, Left, MessagePosted}

func (k NotificationKind) String() string {
	switch k {
	case Joined:
		return "joined"
	case Left:
		return "left"
	case MessagePosted:
		return "message_posted"
	default:
		return "unknown"
	}
}

// NotificationPayload is handed by value to every reaction.
// Text is only set for MessagePosted.
type NotificationPayload struct {
	Actor Participant
	Text  string
}
