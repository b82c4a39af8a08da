package participant

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/moderation"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUser_SendMessage_Delegates_To_Hub(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	user := NewUser("JJ", hub)

	// Given the hub accepts the message
	hub.EXPECT().SendMessage(user, "hello").Return(nil).Times(1)

	// When the user talks
	err := user.SendMessage("hello")

	// Then the hub got it with the user as sender
	req.NoError(err)
}

func TestUser_SendMessage_Returns_Hub_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	user := NewUser("JJ", hub)

	hub.EXPECT().SendMessage(user, "hello").Return(errors.ErrUnknownParticipant)

	req.ErrorIs(user.SendMessage("hello"), errors.ErrUnknownParticipant)
}

func TestUser_Reactions_Are_Reported(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	reporter := mocks.NewMockReporter(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	user := NewUser("JJ", hub, WithReporter(reporter), WithLogger(log))
	other := NewUser("PJ", hub)

	joined := domain.NotificationPayload{Actor: other}
	posted := domain.NotificationPayload{Actor: other, Text: "hi"}

	// Then every reaction is reported in order and the hub is never called
	gomock.InOrder(
		reporter.EXPECT().Report(user, domain.Joined, joined),
		reporter.EXPECT().Report(user, domain.MessagePosted, posted),
		reporter.EXPECT().Report(user, domain.Left, joined),
	)

	user.OnJoined(joined)
	user.OnMessage(posted)
	user.OnLeft(joined)
}

func TestChatBot_Removes_Offender_Then_Announces(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	bot := NewChatBot("Angry Bot", hub, WithLogger(log))
	offender := NewUser("JJ", hub)

	// Then the removal happens before the announcement
	gomock.InOrder(
		hub.EXPECT().RemoveFromChat(offender).Return(nil).Times(1),
		hub.EXPECT().SendMessage(bot, fmt.Sprintf("Word %s is forbidden", ForbiddenWord)).Return(nil).Times(1),
	)

	// When the forbidden word is posted
	bot.OnMessage(domain.NotificationPayload{Actor: offender, Text: ForbiddenWord})
}

func TestChatBot_No_Announcement_When_Removal_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	bot := NewChatBot("Angry Bot", hub)
	offender := NewUser("JJ", hub)

	// Given another agent already removed the offender
	hub.EXPECT().RemoveFromChat(offender).Return(errors.ErrUnknownParticipant).Times(1)
	// Then nothing is sent
	hub.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

	bot.OnMessage(domain.NotificationPayload{Actor: offender, Text: ForbiddenWord})
}

func TestChatBot_Ignores_Allowed_Messages(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	bot := NewChatBot("Angry Bot", hub)
	author := NewUser("JJ", hub)

	// Then the hub is never touched
	hub.EXPECT().RemoveFromChat(gomock.Any()).Times(0)
	hub.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

	for _, text := range []string{"", "cats", "the cat sleeps", "addBot"} {
		bot.OnMessage(domain.NotificationPayload{Actor: author, Text: text})
	}
	bot.OnJoined(domain.NotificationPayload{Actor: author})
	bot.OnLeft(domain.NotificationPayload{Actor: author})
}

func TestChatBot_Moderates_Other_Bots(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	bot := NewChatBot("Angry Bot", hub)
	otherBot := NewChatBot("Angry Bot", hub)

	// Then another agent breaking the rule is removed like anyone else
	gomock.InOrder(
		hub.EXPECT().RemoveFromChat(otherBot).Return(nil).Times(1),
		hub.EXPECT().SendMessage(bot, fmt.Sprintf("Word %s is forbidden", ForbiddenWord)).Return(nil).Times(1),
	)

	bot.OnMessage(domain.NotificationPayload{Actor: otherBot, Text: ForbiddenWord})
}

func TestChatBot_Dictionary_Policy(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	moderator, err := moderation.NewModerator([]string{"snake"}, '*', log)
	req.NoError(err)
	bot := NewChatBot("Angry Bot", hub, WithPolicy(moderator), WithLogger(log))
	offender := NewUser("RJ", hub)

	// Given a dictionary policy
	// Then a word hidden inside a sentence is enough
	// And the announcement hides the word so no agent flags it
	gomock.InOrder(
		hub.EXPECT().RemoveFromChat(offender).Return(nil),
		hub.EXPECT().SendMessage(bot, "Word ***** is forbidden").Return(nil),
	)

	bot.OnMessage(domain.NotificationPayload{Actor: offender, Text: "look, a 5-N-A-K-E!"})
	_, flagged := moderator.Violation("Word ***** is forbidden")
	req.False(flagged)
}

func TestFactories_Bind_Products_To_Hub(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockIHub(ctrl)
	users := NewUserFactory(hub)
	bots := NewChatBotFactory(hub)

	first := users.Create("JJ")
	second := users.Create("JJ")
	bot := bots.Create("Angry Bot")

	// Then names are kept, identities are distinct
	req.Equal("JJ", first.Name())
	req.Equal("JJ", second.Name())
	req.NotEqual(first.ID(), second.ID())
	req.False(first == second)
	req.IsType(&User{}, first)
	req.IsType(&ChatBot{}, bot)

	// And every product talks to the bound hub
	hub.EXPECT().SendMessage(first, "from user").Return(nil)
	hub.EXPECT().SendMessage(bot, "from bot").Return(nil)
	req.NoError(first.SendMessage("from user"))
	req.NoError(bot.SendMessage("from bot"))
}
