package messages

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/ptr"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, 24*time.Hour), srv
}

func TestConversation_SaveAndGet(t *testing.T) {
	store, srv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveConversation(ctx, &domain.Conversation{ReservationID: 11, UserID: ptr.Ptr(int64(7))}))
	require.NoError(t, store.SaveConversation(ctx, &domain.Conversation{ReservationID: 11, DriverID: ptr.Ptr(int64(3))}))

	conv, err := store.GetConversation(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *conv.UserID)
	assert.Equal(t, int64(3), *conv.DriverID)
	assert.Nil(t, conv.AdminID)
	assert.False(t, conv.CreatedAt.IsZero())

	assert.Equal(t, 24*time.Hour, srv.TTL("conversation:11"))

	_, err = store.GetConversation(ctx, 12)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestAppendListMarkRead(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	msgs := []*domain.Message{
		{ID: "m1", ReservationID: 11, SenderID: 7, SenderRole: domain.RoleCustomer, Content: "Merhaba", Type: domain.MessageText},
		{ID: "m2", ReservationID: 11, SenderID: 3, SenderRole: domain.RoleDriver, Content: "Yoldayım", Type: domain.MessageText},
		{ID: "m3", ReservationID: 11, SenderID: 3, SenderRole: domain.RoleDriver, Content: "Geldim", Type: domain.MessageText},
	}
	for _, m := range msgs {
		require.NoError(t, store.Append(ctx, m))
	}

	list, err := store.List(ctx, 11)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "Geldim", list[2].Content)

	marked, err := store.MarkRead(ctx, 11, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	list, err = store.List(ctx, 11)
	require.NoError(t, err)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)
	assert.True(t, list[2].Read)

	marked, err = store.MarkRead(ctx, 11, 7)
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestList_EmptyConversation(t *testing.T) {
	store, _ := newTestStore(t)

	list, err := store.List(context.Background(), 99)

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubscribe_ReceivesAppendedMessages(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := store.Subscribe(ctx, 11)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, store.Append(ctx, &domain.Message{ID: "m1", ReservationID: 11, SenderID: 7, Content: "Merhaba", Type: domain.MessageText}))

	select {
	case msg := <-sub.Messages():
		require.NotNil(t, msg)
		assert.Equal(t, "m1", msg.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}
