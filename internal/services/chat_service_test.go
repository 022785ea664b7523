// internal/services/chat_service_test.go
package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

func newChatService(t *testing.T) (*ChatService, *events.Bus) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bus := events.NewBus()
	repos := repository.New(nil, store)
	return NewChatService(repos.Chat, bus), bus
}

func TestConversationIDIsDirectionIndependent(t *testing.T) {
	assert.Equal(t,
		ConversationID("seller:alice", "buyer:bob"),
		ConversationID("buyer:bob", "seller:alice"))
}

func TestChatHistorySharedBetweenBothSides(t *testing.T) {
	chat, _ := newChatService(t)

	_, err := chat.Send("buyer:bob", &SendMessageRequest{To: "seller:alice", Body: "Masih ada stok beras?"})
	require.NoError(t, err)
	_, err = chat.Send("seller:alice", &SendMessageRequest{To: "buyer:bob", Body: "Masih, 10kg."})
	require.NoError(t, err)

	fromBob, err := chat.History("buyer:bob", "seller:alice")
	require.NoError(t, err)
	fromAlice, err := chat.History("seller:alice", "buyer:bob")
	require.NoError(t, err)

	require.Len(t, fromBob, 2)
	assert.Equal(t, fromBob, fromAlice)
	assert.Equal(t, "buyer:bob", fromBob[0].SenderKey)
	assert.Equal(t, "seller:alice", fromBob[1].SenderKey)
}

func TestSendNotifiesRecipientTopic(t *testing.T) {
	chat, bus := newChatService(t)

	var owners []string
	bus.Subscribe(events.TopicChat, func(n events.Notification) {
		owners = append(owners, n.Owner)
	})

	_, err := chat.Send("buyer:bob", &SendMessageRequest{To: "seller:alice", Body: "Halo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"seller:alice"}, owners)
}

func TestHistoriesAreIsolatedPerPair(t *testing.T) {
	chat, _ := newChatService(t)

	_, err := chat.Send("buyer:bob", &SendMessageRequest{To: "seller:alice", Body: "Halo alice"})
	require.NoError(t, err)
	_, err = chat.Send("buyer:bob", &SendMessageRequest{To: "farmer:dewi", Body: "Halo dewi"})
	require.NoError(t, err)

	withAlice, err := chat.History("buyer:bob", "seller:alice")
	require.NoError(t, err)
	require.Len(t, withAlice, 1)
	assert.Equal(t, "Halo alice", withAlice[0].Body)
}
