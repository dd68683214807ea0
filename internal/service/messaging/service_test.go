package messaging

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	messagesStore "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/messages"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging/models"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/mfkayan044/securedrive-sub000/pkg/ptr"
)

type MockReservationReader struct {
	mock.Mock
}

func (m *MockReservationReader) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

var (
	admin    = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	customer = domain.Actor{UserID: 42, Role: domain.RoleCustomer}
	driver   = domain.Actor{UserID: 7, Role: domain.RoleDriver}
)

func newTestService(t *testing.T) (*Service, *MockReservationReader) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	reservations := new(MockReservationReader)
	svc := NewService(messagesStore.NewStore(client, time.Hour), reservations, logger.Nop())
	return svc, reservations
}

func TestConversationFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateConversation(ctx, 100, ptr.Ptr(int64(42)), nil))

	sent, err := svc.SendMessage(ctx, 100, customer, &models.SendMessageRequest{Content: "  Uçağım 20 dk gecikecek  "})
	require.NoError(t, err)
	assert.Equal(t, "Uçağım 20 dk gecikecek", sent.Content)
	assert.Equal(t, "text", sent.Type)
	assert.NotEmpty(t, sent.ID)

	_, err = svc.SendMessage(ctx, 100, driver, &models.SendMessageRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.AttachDriver(ctx, 100, 7))
	_, err = svc.SendMessage(ctx, 100, driver, &models.SendMessageRequest{Content: "Tamam, bekliyorum", Type: "text"})
	require.NoError(t, err)

	require.NoError(t, svc.PostSystemMessage(ctx, 100, "Sürücü yola çıktı."))

	list, err := svc.ListMessages(ctx, 100, admin)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "system", list[2].Type)

	marked, err := svc.MarkRead(ctx, 100, customer)
	require.NoError(t, err)
	assert.Equal(t, 2, marked.Marked)

	list, err = svc.ListMessages(ctx, 100, customer)
	require.NoError(t, err)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)
}

func TestSendMessage_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateConversation(ctx, 100, ptr.Ptr(int64(42)), nil))

	tests := []struct {
		name string
		req  *models.SendMessageRequest
	}{
		{name: "empty", req: &models.SendMessageRequest{Content: "   "}},
		{name: "too long", req: &models.SendMessageRequest{Content: strings.Repeat("a", domain.MaxMessageLength+1)}},
		{name: "system from user", req: &models.SendMessageRequest{Content: "x", Type: "system"}},
		{name: "unknown type", req: &models.SendMessageRequest{Content: "x", Type: "video"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendMessage(ctx, 100, customer, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConversation_RestoredFromReservation(t *testing.T) {
	svc, reservations := newTestService(t)
	ctx := context.Background()

	reservations.On("GetByID", ctx, int64(200)).Return(&domain.Reservation{ID: 200, UserID: ptr.Ptr(int64(42))}, nil)
	reservations.On("GetByID", ctx, int64(404)).Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := svc.SendMessage(ctx, 200, customer, &models.SendMessageRequest{Content: "merhaba"})
	require.NoError(t, err)

	_, err = svc.ListMessages(ctx, 404, admin)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// второй вызов берет переписку из хранилища
	_, err = svc.ListMessages(ctx, 200, customer)
	require.NoError(t, err)
	reservations.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestSubscribe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, svc.CreateConversation(ctx, 100, ptr.Ptr(int64(42)), nil))

	_, err := svc.Subscribe(ctx, 100, driver)
	assert.ErrorIs(t, err, ErrAccessDenied)

	sub, err := svc.Subscribe(ctx, 100, customer)
	require.NoError(t, err)
	defer sub.Close()

	_, err = svc.SendMessage(ctx, 100, admin, &models.SendMessageRequest{Content: "Transferiniz onaylandı"})
	require.NoError(t, err)

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "Transferiniz onaylandı", msg.Content)
		assert.Equal(t, domain.RoleAdmin, msg.SenderRole)
	case <-ctx.Done():
		t.Fatal("message was not delivered")
	}
}
