package runtime

import (
	"chat-hub/domain"

	"github.com/samber/lo"
)

// Registry keeps, for each notification kind, the ordered set of participants wired to it.
// It is not safe for concurrent use, the Hub guards it.
type Registry struct {
	channels map[domain.NotificationKind][]domain.Participant
}

func NewRegistry() *Registry {
	return &Registry{channels: make(map[domain.NotificationKind][]domain.Participant)}
}

// Subscribe appends p to the kind's channel.
// It reports false when p was already subscribed, the order is left untouched.
func (r *Registry) Subscribe(kind domain.NotificationKind, p domain.Participant) bool {
	if r.IsSubscribed(kind, p) {
		return false
	}
	r.channels[kind] = append(r.channels[kind], p)
	return true
}

// Unsubscribe removes p from the kind's channel and drops the channel once empty.
func (r *Registry) Unsubscribe(kind domain.NotificationKind, p domain.Participant) bool {
	if !r.IsSubscribed(kind, p) {
		return false
	}
	remaining := lo.Without(r.channels[kind], p)
	if len(remaining) == 0 {
		delete(r.channels, kind)
		return true
	}
	r.channels[kind] = remaining
	return true
}

func (r *Registry) SubscribeAll(p domain.Participant) {
	for _, kind := range domain.NotificationKinds {
		r.Subscribe(kind, p)
	}
}

func (r *Registry) UnsubscribeAll(p domain.Participant) {
	for _, kind := range domain.NotificationKinds {
		r.Unsubscribe(kind, p)
	}
}

func (r *Registry) IsSubscribed(kind domain.NotificationKind, p domain.Participant) bool {
	return lo.Contains(r.channels[kind], p)
}

// Snapshot copies the kind's subscribers in registration order.
// Broadcasts iterate the copy so reactions may mutate the registry freely.
func (r *Registry) Snapshot(kind domain.NotificationKind) []domain.Participant {
	subscribers := r.channels[kind]
	if len(subscribers) == 0 {
		return nil
	}
	return append(make([]domain.Participant, 0, len(subscribers)), subscribers...)
}

// Reset forgets every subscription of a previous session.
func (r *Registry) Reset() {
	clear(r.channels)
}
