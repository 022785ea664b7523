// internal/events/redis_bridge.go
package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const bridgeChannel = "agrimarket:events"

// RedisBridge relays bus notifications across processes over Redis Pub/Sub,
// standing in for the storage-change events sibling browser tabs relied on.
// Like the rest of the notification path it is best-effort: publish errors
// are logged and swallowed, and there is no delivery guarantee.
type RedisBridge struct {
	bus    *Bus
	client *redis.Client
	cancel context.CancelFunc
}

func NewRedisBridge(url string, bus *Bus) (*RedisBridge, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBridge{bus: bus, client: client, cancel: cancel}

	bus.SubscribeAll(b.forward)
	go b.listen(ctx)

	return b, nil
}

func (b *RedisBridge) forward(n Notification) {
	// Only relay locally published notifications; re-forwarding injected
	// ones would echo forever.
	if n.Origin != b.bus.Origin() {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := b.client.Publish(context.Background(), bridgeChannel, payload).Err(); err != nil {
		logrus.WithError(err).Warn("event bridge: publish failed")
	}
}

func (b *RedisBridge) listen(ctx context.Context) {
	sub := b.client.Subscribe(ctx, bridgeChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		var n Notification
		if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
			logrus.WithError(err).Warn("event bridge: discarding malformed notification")
			continue
		}
		if n.Origin == b.bus.Origin() {
			continue
		}
		b.bus.Inject(n)
	}
}

func (b *RedisBridge) Close() error {
	b.cancel()
	return b.client.Close()
}
