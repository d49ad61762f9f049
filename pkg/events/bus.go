// Package events provides the in-process notification bus the queues publish
// to and the presentation layer subscribes to.
package events

import (
	"sync"

	"github.com/google/uuid"
)

// Topics published by the core services.
const (
	// TopicTransactionJobAdded is emitted when a job was added to the transaction queue
	TopicTransactionJobAdded = "transaction_queue:job:added"
	// TopicTransactionCycleFinished is emitted when the transaction queue finishes a processing cycle
	TopicTransactionCycleFinished = "transaction_queue:finished_cycle"
	// TopicMessageAdded is emitted when a job was added to the messaging queue
	TopicMessageAdded = "messaging_queue:job:added"
)

const subscriberBuffer = 16

// Bus is a minimal topic-based fan-out. Subscribers register explicitly and
// receive payloads on their own buffered channel; Emit never blocks, a
// subscriber that falls more than subscriberBuffer payloads behind misses
// events rather than stalling the queues.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan any
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[string]chan any)}
}

// Subscribe registers interest in a topic. The returned cancel func removes
// the subscription and closes the channel; it is safe to call twice.
func (b *Bus) Subscribe(topic string) (<-chan any, func()) {
	ch := make(chan any, subscriberBuffer)
	id := uuid.NewString()

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]chan any)
	}
	b.subs[topic][id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[topic], id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Emit delivers payload to every current subscriber of topic
func (b *Bus) Emit(topic string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[topic] {
		select {
		case ch <- payload:
		default:
		}
	}
}
