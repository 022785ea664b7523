// internal/events/bus.go
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/metrics"
)

// Topics published by the synchronization facade. Payloads identify the
// changed namespace, not the change itself: subscribers re-fetch.
const (
	TopicMarketplace   = "marketplace:updated"
	TopicRevenue       = "revenue:updated"
	TopicLikes         = "likes:updated"
	TopicOrders        = "orders:updated"
	TopicArticles      = "articles:updated"
	TopicForum         = "forum:updated"
	TopicChat          = "chat:message"
	TopicRobot         = "robot:updated"
	TopicNotifications = "notifications:updated"
)

// Notification signals that something under a topic changed. Seq is a
// per-topic monotonic sequence number assigned by the publishing process,
// letting subscribers detect missed notifications. There is no payload
// delta and no ordering guarantee across topics.
type Notification struct {
	Topic  string    `json:"topic"`
	Seq    uint64    `json:"seq"`
	Owner  string    `json:"owner,omitempty"` // acting owner key, for targeted consumers
	Origin string    `json:"origin"`          // publishing process id
	At     time.Time `json:"at"`
}

type Handler func(Notification)

// Bus is the in-process change notification mechanism. Handlers run on the
// publisher's goroutine; they are expected to be cheap (typically a channel
// send or a dirty-flag set followed by a re-fetch elsewhere).
type Bus struct {
	origin string

	mu   sync.RWMutex
	seqs map[string]*uint64
	subs map[string][]Handler
	all  []Handler
}

func NewBus() *Bus {
	return &Bus{
		origin: uuid.NewString(),
		seqs:   make(map[string]*uint64),
		subs:   make(map[string][]Handler),
	}
}

// Origin identifies this process on the cross-process bridge.
func (b *Bus) Origin() string { return b.origin }

func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// SubscribeAll receives notifications for every topic.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish assigns the next sequence number for topic and fans the
// notification out to subscribers.
func (b *Bus) Publish(topic, owner string) Notification {
	n := Notification{
		Topic:  topic,
		Seq:    b.nextSeq(topic),
		Owner:  owner,
		Origin: b.origin,
		At:     time.Now(),
	}
	b.dispatch(n)
	return n
}

// Inject delivers a notification produced elsewhere (the redis bridge)
// without assigning a local sequence number.
func (b *Bus) Inject(n Notification) {
	b.dispatch(n)
}

func (b *Bus) nextSeq(topic string) uint64 {
	b.mu.Lock()
	counter, ok := b.seqs[topic]
	if !ok {
		counter = new(uint64)
		b.seqs[topic] = counter
	}
	b.mu.Unlock()
	return atomic.AddUint64(counter, 1)
}

// Seq returns the last sequence number published for topic.
func (b *Bus) Seq(topic string) uint64 {
	b.mu.RLock()
	counter, ok := b.seqs[topic]
	b.mu.RUnlock()
	if !ok {
		return 0
	}
	return atomic.LoadUint64(counter)
}

func (b *Bus) dispatch(n Notification) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[n.Topic])+len(b.all))
	handlers = append(handlers, b.subs[n.Topic]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	metrics.ObserveNotification(n.Topic)
	for _, h := range handlers {
		h(n)
	}
}
