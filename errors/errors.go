package errors

import "fmt"

var (
	ErrDuplicateParticipant = fmt.Errorf("participant already in chat")
	ErrUnknownParticipant   = fmt.Errorf("participant not in chat")
	ErrChatNotCreated       = fmt.Errorf("chat has not been created")
	ErrInvalidPayload       = fmt.Errorf("invalid event payload")
)
