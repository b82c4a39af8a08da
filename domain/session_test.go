package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubParticipant struct {
	id   uuid.UUID
	name string
}

func newStub(name string) *stubParticipant {
	return &stubParticipant{id: uuid.New(), name: name}
}

func (s *stubParticipant) ID() uuid.UUID                 { return s.id }
func (s *stubParticipant) Name() string                  { return s.name }
func (s *stubParticipant) SendMessage(string) error      { return nil }
func (s *stubParticipant) OnJoined(NotificationPayload)  {}
func (s *stubParticipant) OnLeft(NotificationPayload)    {}
func (s *stubParticipant) OnMessage(NotificationPayload) {}

func TestSession_Members_Keep_Join_Order_With_Removed_Excised(t *testing.T) {
	req := require.New(t)
	session := NewSession(uuid.New(), time.Now().UTC())
	alice, bob, clara := newStub("Alice"), newStub("Bob"), newStub("Clara")

	// Given three members joined in order
	req.True(session.AddMember(alice))
	req.True(session.AddMember(bob))
	req.True(session.AddMember(clara))

	// When the middle one is removed
	req.True(session.RemoveMember(bob))

	// Then the others keep their order
	req.Equal([]Participant{alice, clara}, session.Members())
	req.False(session.Contains(bob))
}

func TestSession_Identity_Is_Not_Name(t *testing.T) {
	req := require.New(t)
	session := NewSession(uuid.New(), time.Now().UTC())
	first, second := newStub("Twin"), newStub("Twin")

	req.True(session.AddMember(first))
	// Same name, distinct identity
	req.True(session.AddMember(second))
	// Same identity is refused
	req.False(session.AddMember(first))
	req.Len(session.Members(), 2)
}

func TestSession_Remove_Unknown_Member(t *testing.T) {
	req := require.New(t)
	session := NewSession(uuid.New(), time.Now().UTC())
	req.False(session.RemoveMember(newStub("Ghost")))
	req.Empty(session.Members())
}

func TestSession_Snapshots_Are_Copies(t *testing.T) {
	req := require.New(t)
	session := NewSession(uuid.New(), time.Now().UTC())
	alice := newStub("Alice")
	session.AddMember(alice)
	session.Append(Message{ID: uuid.New(), Sender: alice, Content: "hello", CreatedAt: time.Now().UTC()})

	members := session.Members()
	messages := session.Messages()
	members[0] = newStub("Mallory")
	messages[0].Content = "tampered"

	req.Equal(alice, session.Members()[0])
	req.Equal("hello", session.Messages()[0].Content)
}

func TestSession_Append_Numbers_Messages(t *testing.T) {
	req := require.New(t)
	session := NewSession(uuid.New(), time.Now().UTC())
	alice := newStub("Alice")
	at := time.Now().UTC()

	first := session.Append(Message{ID: uuid.New(), Sender: alice, Content: "one", CreatedAt: at})
	second := session.Append(Message{ID: uuid.New(), Sender: alice, Content: "two", CreatedAt: at})

	req.Equal(uint64(1), first.Seq)
	req.Equal(uint64(2), second.Seq)
	req.Equal([]uint64{1, 2}, []uint64{session.Messages()[0].Seq, session.Messages()[1].Seq})
}

func TestNotificationKind_String(t *testing.T) {
	req := require.New(t)
	req.Equal("joined", Joined.String())
	req.Equal("left", Left.String())
	req.Equal("message_posted", MessagePosted.String())
	req.Equal("unknown", NotificationKind(42).String())
}
