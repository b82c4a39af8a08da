package runtime

import (
	"chat-hub/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Subscribe_Keeps_Order_And_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice, bob := newSpy("Alice"), newSpy("Bob")

	// When participants subscribe, one of them twice
	req.True(registry.Subscribe(domain.MessagePosted, alice))
	req.True(registry.Subscribe(domain.MessagePosted, bob))
	req.False(registry.Subscribe(domain.MessagePosted, alice))

	// Then each appears once in registration order
	req.Equal([]domain.Participant{alice, bob}, registry.Snapshot(domain.MessagePosted))
	req.Nil(registry.Snapshot(domain.Joined))
}

func TestRegistry_SubscribeAll_And_UnsubscribeAll(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice, bob := newSpy("Alice"), newSpy("Bob")

	registry.SubscribeAll(alice)
	registry.SubscribeAll(bob)
	for _, kind := range domain.NotificationKinds {
		req.True(registry.IsSubscribed(kind, alice), "kind=%s", kind)
	}

	// When one participant leaves every channel
	registry.UnsubscribeAll(alice)

	// Then only the other one is left, in every channel
	for _, kind := range domain.NotificationKinds {
		req.Equal([]domain.Participant{bob}, registry.Snapshot(kind), "kind=%s", kind)
	}

	// And empty channels are dropped
	registry.UnsubscribeAll(bob)
	req.Empty(registry.channels)
	req.False(registry.Unsubscribe(domain.Left, bob))
}

func TestRegistry_Snapshot_Is_Stable_Under_Mutation(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice, bob, clara := newSpy("Alice"), newSpy("Bob"), newSpy("Clara")
	registry.SubscribeAll(alice)
	registry.SubscribeAll(bob)

	// Given a snapshot was taken
	snapshot := registry.Snapshot(domain.MessagePosted)

	// When the registry changes afterwards
	registry.Unsubscribe(domain.MessagePosted, alice)
	registry.Subscribe(domain.MessagePosted, clara)

	// Then the snapshot is untouched
	req.Equal([]domain.Participant{alice, bob}, snapshot)
	req.Equal([]domain.Participant{bob, clara}, registry.Snapshot(domain.MessagePosted))
}

func TestRegistry_Reset(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.SubscribeAll(newSpy("Alice"))

	registry.Reset()

	for _, kind := range domain.NotificationKinds {
		req.Nil(registry.Snapshot(kind))
	}
}
