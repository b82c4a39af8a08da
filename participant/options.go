package participant

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/moderation"
	"log/slog"
)

type settings struct {
	log      *slog.Logger
	reporter contract.Reporter
	policy   moderation.Policy
}

type Option func(s *settings)

func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithReporter sets where reactions are reported to, the console in the driver.
func WithReporter(reporter contract.Reporter) Option {
	return func(s *settings) {
		s.reporter = reporter
	}
}

// WithPolicy only matters to moderation agents.
func WithPolicy(policy moderation.Policy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		log:    slog.New(slog.DiscardHandler),
		policy: moderation.ExactToken(ForbiddenWord),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) report(recipient domain.Participant, kind domain.NotificationKind, payload domain.NotificationPayload) {
	if s.reporter != nil {
		s.reporter.Report(recipient, kind, payload)
	}
}
