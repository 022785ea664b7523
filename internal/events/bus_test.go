// internal/events/bus_test.go
package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishAssignsMonotonicSequencePerTopic(t *testing.T) {
	bus := NewBus()

	first := bus.Publish(TopicMarketplace, "seller:alice")
	second := bus.Publish(TopicMarketplace, "seller:alice")
	other := bus.Publish(TopicRevenue, "seller:alice")

	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, uint64(1), other.Seq, "each topic has its own counter")
	assert.Equal(t, uint64(2), bus.Seq(TopicMarketplace))
	assert.Equal(t, uint64(0), bus.Seq(TopicOrders))
}

func TestSubscribeReceivesOnlyItsTopic(t *testing.T) {
	bus := NewBus()

	var got []Notification
	bus.Subscribe(TopicMarketplace, func(n Notification) {
		got = append(got, n)
	})

	bus.Publish(TopicMarketplace, "seller:alice")
	bus.Publish(TopicRevenue, "seller:alice")

	assert.Len(t, got, 1)
	assert.Equal(t, TopicMarketplace, got[0].Topic)
	assert.Equal(t, "seller:alice", got[0].Owner)
	assert.Equal(t, bus.Origin(), got[0].Origin)
}

func TestSubscribeAllReceivesEveryTopic(t *testing.T) {
	bus := NewBus()

	var topics []string
	bus.SubscribeAll(func(n Notification) {
		topics = append(topics, n.Topic)
	})

	bus.Publish(TopicMarketplace, "")
	bus.Publish(TopicChat, "buyer:bob")

	assert.Equal(t, []string{TopicMarketplace, TopicChat}, topics)
}

func TestInjectDeliversWithoutAdvancingLocalSequence(t *testing.T) {
	bus := NewBus()

	var got []Notification
	bus.Subscribe(TopicOrders, func(n Notification) {
		got = append(got, n)
	})

	bus.Inject(Notification{
		Topic:  TopicOrders,
		Seq:    9,
		Origin: "other-process",
		At:     time.Now(),
	})

	assert.Len(t, got, 1)
	assert.Equal(t, uint64(9), got[0].Seq)
	assert.Equal(t, uint64(0), bus.Seq(TopicOrders), "foreign notifications do not advance the local counter")
}
