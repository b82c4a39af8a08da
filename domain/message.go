// Package domain contains core concepts of the chat system.
// This file defines Message entries of the session log.
// Messages are immutable once appended.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat log entry.
type Message struct {
	ID        uuid.UUID // unique identifier
	Seq       uint64    // position in the session log, starting at 1
	Sender    Participant
	Content   string
	CreatedAt time.Time
}
