//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	GetMessages(session uuid.UUID, cursor *string) ([]DiskMessage, *string, error)
}

// MessageRepository recalls the transcript of chat sessions.
// It is meant to run on an in-memory Badger instance, nothing outlives the process.
type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.WARNING))
}

type DiskMessage struct {
	ID       uuid.UUID
	Session  uuid.UUID
	AuthorID uuid.UUID
	Author   string
	Content  string
	Seq      uint64
	At       time.Time
}

// StoreMessage keys entries as "msg:{session}:{seq_padded}".
// The 19-digit padding keeps lexicographical order equal to send order,
// whatever the clock said when the message was logged.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	key := fmt.Sprintf("msg:%s:%019d", message.Session, message.Seq)
	value, err := fromDiskMessage(message)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages pages through a session from the newest message backwards.
// The returned cursor is handed back to fetch the next, older, page; it is nil once nothing is left.
func (m MessageRepository) GetMessages(session uuid.UUID, cursor *string) ([]DiskMessage, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", session)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Past the highest possible sequence, then walk back
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(byteMessages) == 0 {
		return nil, nil, nil
	}

	diskMessages := make([]DiskMessage, 0, len(byteMessages))
	for _, b := range byteMessages {
		var value structpb.Struct
		if err = proto.Unmarshal(b, &value); err != nil {
			return nil, nil, err
		}
		message, err := toDiskMessage(&value)
		if err != nil {
			return nil, nil, err
		}
		diskMessages = append(diskMessages, message)
	}
	return diskMessages, &lastKey, nil
}

func fromDiskMessage(message DiskMessage) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":        message.ID.String(),
		"session":   message.Session.String(),
		"author_id": message.AuthorID.String(),
		"author":    message.Author,
		"content":   message.Content,
		"seq":       strconv.FormatUint(message.Seq, 10),
		"at":        message.At.UTC().Format(time.RFC3339Nano),
	})
}

func toDiskMessage(value *structpb.Struct) (DiskMessage, error) {
	fields := value.GetFields()
	ids := make([]uuid.UUID, 0, 3)
	for _, name := range []string{"id", "session", "author_id"} {
		parsed, err := uuid.Parse(fields[name].GetStringValue())
		if err != nil {
			return DiskMessage{}, fmt.Errorf("field %s: %w", name, err)
		}
		ids = append(ids, parsed)
	}
	seq, err := strconv.ParseUint(fields["seq"].GetStringValue(), 10, 64)
	if err != nil {
		return DiskMessage{}, fmt.Errorf("field seq: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:       ids[0],
		Session:  ids[1],
		AuthorID: ids[2],
		Author:   fields["author"].GetStringValue(),
		Content:  fields["content"].GetStringValue(),
		Seq:      seq,
		At:       at.UTC(),
	}, nil
}
