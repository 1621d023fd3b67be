package service

import (
	"sync"
)

type UpdateKind string

const (
	UpdateSubmission UpdateKind = "submission"
	UpdateVote       UpdateKind = "vote"
)

// EventUpdate is a change notice for one event: a new submission or a new
// vote. It carries no payload; subscribers re-query the service.
type EventUpdate struct {
	EventID uint
	Kind    UpdateKind
}

// UpdateSubscriber represents a subscriber to the update broker
type UpdateSubscriber struct {
	ID      string
	Updates chan EventUpdate
}

// UpdateBroker is an in-process pub/sub channel letting the rendering
// layer refresh an event page without polling. Publishing never blocks.
type UpdateBroker interface {
	Subscribe(id string) *UpdateSubscriber
	Unsubscribe(id string)
	Publish(update EventUpdate)
	Close() error
}

type updateBroker struct {
	subscribers     map[string]*UpdateSubscriber
	subscriberMutex sync.RWMutex
}

func newUpdateBroker() UpdateBroker {
	return &updateBroker{
		subscribers: make(map[string]*UpdateSubscriber),
	}
}

// Subscribe creates a new subscriber and returns it
func (b *updateBroker) Subscribe(id string) *UpdateSubscriber {
	b.subscriberMutex.Lock()
	defer b.subscriberMutex.Unlock()

	if subscriber, exists := b.subscribers[id]; exists {
		return subscriber
	}

	subscriber := &UpdateSubscriber{
		ID:      id,
		Updates: make(chan EventUpdate, 100), // Buffered channel to prevent blocking
	}

	b.subscribers[id] = subscriber
	return subscriber
}

// Unsubscribe removes a subscriber from the broker
func (b *updateBroker) Unsubscribe(id string) {
	b.subscriberMutex.Lock()
	defer b.subscriberMutex.Unlock()

	if subscriber, exists := b.subscribers[id]; exists {
		delete(b.subscribers, id)
		close(subscriber.Updates)
	}
}

// Publish sends an update to all subscribers
func (b *updateBroker) Publish(update EventUpdate) {
	b.subscriberMutex.RLock()
	defer b.subscriberMutex.RUnlock()

	for _, subscriber := range b.subscribers {
		// Non-blocking send so a slow subscriber cannot stall a mutation
		select {
		case subscriber.Updates <- update:
		default:
		}
	}
}

func (b *updateBroker) Close() error {
	b.subscriberMutex.Lock()
	defer b.subscriberMutex.Unlock()

	for id, subscriber := range b.subscribers {
		delete(b.subscribers, id)
		close(subscriber.Updates)
	}
	return nil
}
