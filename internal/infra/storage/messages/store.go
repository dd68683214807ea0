package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Ключи Redis:
//
//	conversation:{id}           hash с участниками (user_id, driver_id, admin_id, created_at)
//	conversation:{id}:messages  list с JSON сообщениями в порядке отправки
//	conversation:{id}:events    pub/sub канал новых сообщений
const keyPrefix = "conversation:"

// Store хранилище переписки по бронированиям
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище. ttl=0 - без срока жизни
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func conversationKey(reservationID int64) string {
	return keyPrefix + strconv.FormatInt(reservationID, 10)
}

func messagesKey(reservationID int64) string {
	return conversationKey(reservationID) + ":messages"
}

// EventsChannel канал, в который публикуются новые сообщения переписки
func EventsChannel(reservationID int64) string {
	return conversationKey(reservationID) + ":events"
}

// SaveConversation создает переписку или дописывает в неё заданных участников
// Уже заполненные слоты не очищаются
func (s *Store) SaveConversation(ctx context.Context, conv *domain.Conversation) error {
	key := conversationKey(conv.ReservationID)

	createdAt := conv.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	fields := make(map[string]interface{}, 3)
	if conv.UserID != nil {
		fields["user_id"] = *conv.UserID
	}
	if conv.DriverID != nil {
		fields["driver_id"] = *conv.DriverID
	}
	if conv.AdminID != nil {
		fields["admin_id"] = *conv.AdminID
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, "created_at", createdAt.Format(time.RFC3339Nano))
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
		}
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: SaveConversation - exec pipeline: %v", ErrRedis, err)
	}

	return nil
}

// GetConversation возвращает переписку бронирования
func (s *Store) GetConversation(ctx context.Context, reservationID int64) (*domain.Conversation, error) {
	values, err := s.client.HGetAll(ctx, conversationKey(reservationID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConversation - hgetall: %v", ErrRedis, err)
	}
	if len(values) == 0 {
		return nil, ErrConversationNotFound
	}

	conv := &domain.Conversation{ReservationID: reservationID}
	if conv.UserID, err = parseSlot(values, "user_id"); err != nil {
		return nil, err
	}
	if conv.DriverID, err = parseSlot(values, "driver_id"); err != nil {
		return nil, err
	}
	if conv.AdminID, err = parseSlot(values, "admin_id"); err != nil {
		return nil, err
	}
	if raw, ok := values["created_at"]; ok {
		if conv.CreatedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("%w: GetConversation - created_at: %v", ErrDecode, err)
		}
	}

	return conv, nil
}

// Append добавляет сообщение в конец переписки и публикует его в канал событий
func (s *Store) Append(ctx context.Context, msg *domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: Append - marshal: %v", ErrEncode, err)
	}

	key := messagesKey(msg.ReservationID)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		pipe.Publish(ctx, EventsChannel(msg.ReservationID), payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Append - exec pipeline: %v", ErrRedis, err)
	}

	return nil
}

// List возвращает все сообщения переписки в порядке отправки
func (s *Store) List(ctx context.Context, reservationID int64) ([]*domain.Message, error) {
	raw, err := s.client.LRange(ctx, messagesKey(reservationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - lrange: %v", ErrRedis, err)
	}

	msgs := make([]*domain.Message, 0, len(raw))
	for _, item := range raw {
		var msg domain.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("%w: List - unmarshal: %v", ErrDecode, err)
		}
		msgs = append(msgs, &msg)
	}

	return msgs, nil
}

// MarkRead помечает прочитанными сообщения, отправленные не читателем
// Возвращает количество помеченных сообщений
func (s *Store) MarkRead(ctx context.Context, reservationID, readerID int64) (int, error) {
	key := messagesKey(reservationID)

	msgs, err := s.List(ctx, reservationID)
	if err != nil {
		return 0, err
	}

	marked := 0
	for i, msg := range msgs {
		if msg.Read || msg.SenderID == readerID {
			continue
		}
		msg.Read = true

		payload, err := json.Marshal(msg)
		if err != nil {
			return marked, fmt.Errorf("%w: MarkRead - marshal: %v", ErrEncode, err)
		}
		// Сообщения только дописываются в конец, индексы прочитанных не сдвигаются
		if err := s.client.LSet(ctx, key, int64(i), payload).Err(); err != nil {
			return marked, fmt.Errorf("%w: MarkRead - lset: %v", ErrRedis, err)
		}
		marked++
	}

	return marked, nil
}

// Subscription подписка на новые сообщения одной переписки
type Subscription struct {
	pubsub   *redis.PubSub
	messages chan *domain.Message
}

// Subscribe подписывается на новые сообщения переписки
// Подписку нужно закрыть через Close
func (s *Store) Subscribe(ctx context.Context, reservationID int64) (*Subscription, error) {
	pubsub := s.client.Subscribe(ctx, EventsChannel(reservationID))

	// Дожидаемся подтверждения подписки, чтобы не потерять сообщения, отправленные сразу после
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: Subscribe - receive confirmation: %v", ErrRedis, err)
	}

	sub := &Subscription{
		pubsub:   pubsub,
		messages: make(chan *domain.Message),
	}
	go sub.forward(ctx)

	return sub, nil
}

// Messages канал новых сообщений, закрывается вместе с подпиской
func (sub *Subscription) Messages() <-chan *domain.Message {
	return sub.messages
}

// Close отписывается от канала
func (sub *Subscription) Close() error {
	err := sub.pubsub.Close()
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}
	return err
}

func (sub *Subscription) forward(ctx context.Context) {
	defer close(sub.messages)

	for raw := range sub.pubsub.Channel() {
		var msg domain.Message
		if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
			continue
		}
		select {
		case sub.messages <- &msg:
		case <-ctx.Done():
			return
		}
	}
}

func parseSlot(values map[string]string, field string) (*int64, error) {
	raw, ok := values[field]
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, field, err)
	}
	return &id, nil
}
