package ui

import (
	"chat-hub/domain"
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Console prints one line per reaction, the way a participant would see the chat.
type Console struct {
	out     io.Writer
	colours bool
}

func NewConsole(out io.Writer, colours bool) *Console {
	return &Console{out: out, colours: colours}
}

func (c *Console) Report(recipient domain.Participant, kind domain.NotificationKind, payload domain.NotificationPayload) {
	line := Line(recipient, kind, payload)
	if c.colours {
		line = styleOf(kind).Render(line)
	}
	_, _ = fmt.Fprintln(c.out, line)
}

// Line formats a reaction without any colour.
func Line(recipient domain.Participant, kind domain.NotificationKind, payload domain.NotificationPayload) string {
	switch kind {
	case domain.Joined:
		return fmt.Sprintf("%s - received that %s was added to chat", recipient.Name(), payload.Actor.Name())
	case domain.Left:
		return fmt.Sprintf("%s - received that %s was removed from chat", recipient.Name(), payload.Actor.Name())
	default:
		return fmt.Sprintf("%s - received that %s wrote message - %s", recipient.Name(), payload.Actor.Name(), payload.Text)
	}
}

func styleOf(kind domain.NotificationKind) color.Style {
	switch kind {
	case domain.Joined:
		return color.New(color.FgGreen)
	case domain.Left:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}
