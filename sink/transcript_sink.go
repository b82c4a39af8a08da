package sink

import (
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/repositories"
	"fmt"
	"log/slog"
)

// TranscriptSink stores every posted message so a session can be recalled page by page.
type TranscriptSink struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
}

func NewTranscriptSink(repository repositories.IMessageRepository, log *slog.Logger) TranscriptSink {
	return TranscriptSink{repository: repository, log: log}
}

func (d TranscriptSink) Consume(e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessagePosted:
		if err := d.repository.StoreMessage(toDiskMessage(evt)); err != nil {
			d.log.Error("Transcript write failed", "error", err, "message", evt.ID)
			return err
		}
	case event.ParticipantJoined, event.ParticipantLeft:
	default:
		return fmt.Errorf("%w: %T", errors.ErrInvalidPayload, e)
	}
	return nil
}

func toDiskMessage(event event.MessagePosted) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:       event.ID,
		Session:  event.Session,
		AuthorID: event.AuthorID,
		Author:   event.Author,
		Content:  event.Content,
		Seq:      event.Seq,
		At:       event.At,
	}
}
