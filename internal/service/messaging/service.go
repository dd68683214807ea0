package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	messagesStore "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/messages"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging/models"
)

// Service сервис переписки по бронированию между клиентом, водителем и администратором
type Service struct {
	store        MessageStore
	reservations ReservationReader
	logger       Logger
	now          func() time.Time
}

// NewService создает новый экземпляр сервиса переписки
func NewService(store MessageStore, reservations ReservationReader, logger Logger) *Service {
	return &Service{
		store:        store,
		reservations: reservations,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateConversation создает переписку для нового бронирования
func (s *Service) CreateConversation(ctx context.Context, reservationID int64, userID, adminID *int64) error {
	conv := &domain.Conversation{
		ReservationID: reservationID,
		UserID:        userID,
		AdminID:       adminID,
		CreatedAt:     s.now(),
	}
	if err := s.store.SaveConversation(ctx, conv); err != nil {
		s.logger.Error("CreateConversation: reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: CreateConversation - save: %v", ErrInternal, err)
	}

	s.logger.Info("CreateConversation: conversation for reservation id=%d created", reservationID)
	return nil
}

// AttachDriver записывает назначенного водителя в участники переписки
// При переназначении прежний водитель теряет доступ
func (s *Service) AttachDriver(ctx context.Context, reservationID, driverID int64) error {
	conv := &domain.Conversation{ReservationID: reservationID, DriverID: &driverID}
	if err := s.store.SaveConversation(ctx, conv); err != nil {
		s.logger.Error("AttachDriver: reservation id=%d driver id=%d: %v", reservationID, driverID, err)
		return fmt.Errorf("%w: AttachDriver - save: %v", ErrInternal, err)
	}
	return nil
}

// PostSystemMessage добавляет системное сообщение (уведомления о смене статуса)
func (s *Service) PostSystemMessage(ctx context.Context, reservationID int64, content string) error {
	msg := &domain.Message{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		SenderRole:    domain.RoleAdmin,
		Content:       content,
		Type:          domain.MessageSystem,
		CreatedAt:     s.now(),
	}
	if err := s.store.Append(ctx, msg); err != nil {
		s.logger.Error("PostSystemMessage: reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: PostSystemMessage - append: %v", ErrInternal, err)
	}
	return nil
}

// SendMessage отправляет сообщение от участника переписки
// Системные сообщения от пользователей не принимаются
func (s *Service) SendMessage(ctx context.Context, reservationID int64, actor domain.Actor, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	msgType := domain.MessageType(req.Type)
	if msgType == "" {
		msgType = domain.MessageText
	}
	if !msgType.IsValid() || msgType == domain.MessageSystem {
		return nil, fmt.Errorf("%w: unsupported message type %q", ErrInvalidInput, req.Type)
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	if _, err := s.conversationFor(ctx, "SendMessage", reservationID, actor); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		SenderID:      actor.UserID,
		SenderRole:    actor.Role,
		Content:       content,
		Type:          msgType,
		CreatedAt:     s.now(),
	}
	if err := s.store.Append(ctx, msg); err != nil {
		s.logger.Error("SendMessage: reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: SendMessage - append: %v", ErrInternal, err)
	}

	s.logger.Info("SendMessage: %s=%d wrote to reservation id=%d", actor.Role, actor.UserID, reservationID)
	return models.FromDomainMessage(msg), nil
}

// ListMessages возвращает сообщения переписки в порядке отправки
func (s *Service) ListMessages(ctx context.Context, reservationID int64, actor domain.Actor) ([]*models.MessageResponse, error) {
	if _, err := s.conversationFor(ctx, "ListMessages", reservationID, actor); err != nil {
		return nil, err
	}

	msgs, err := s.store.List(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListMessages: reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListMessages - list: %v", ErrInternal, err)
	}

	return models.FromDomainMessages(msgs), nil
}

// MarkRead помечает прочитанными все чужие сообщения переписки
func (s *Service) MarkRead(ctx context.Context, reservationID int64, actor domain.Actor) (*models.MarkReadResponse, error) {
	if _, err := s.conversationFor(ctx, "MarkRead", reservationID, actor); err != nil {
		return nil, err
	}

	marked, err := s.store.MarkRead(ctx, reservationID, actor.UserID)
	if err != nil {
		s.logger.Error("MarkRead: reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: MarkRead - store: %v", ErrInternal, err)
	}

	return &models.MarkReadResponse{Marked: marked}, nil
}

// Subscribe подписывает участника на новые сообщения переписки
func (s *Service) Subscribe(ctx context.Context, reservationID int64, actor domain.Actor) (*messagesStore.Subscription, error) {
	if _, err := s.conversationFor(ctx, "Subscribe", reservationID, actor); err != nil {
		return nil, err
	}

	sub, err := s.store.Subscribe(ctx, reservationID)
	if err != nil {
		s.logger.Error("Subscribe: reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Subscribe - store: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: %s=%d subscribed to reservation id=%d", actor.Role, actor.UserID, reservationID)
	return sub, nil
}

// conversationFor возвращает переписку и проверяет, что actor её участник
// Переписка, не созданная при оформлении бронирования, восстанавливается по данным бронирования
func (s *Service) conversationFor(ctx context.Context, op string, reservationID int64, actor domain.Actor) (*domain.Conversation, error) {
	conv, err := s.store.GetConversation(ctx, reservationID)
	if errors.Is(err, messagesStore.ErrConversationNotFound) {
		conv, err = s.restoreConversation(ctx, reservationID)
	}
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			s.logger.Warn("%s: conversation for reservation id=%d not found", op, reservationID)
			return nil, err
		}
		s.logger.Error("%s: reservation id=%d: %v", op, reservationID, err)
		return nil, fmt.Errorf("%w: %s - get conversation: %v", ErrInternal, op, err)
	}

	if !conv.IsParticipant(actor) {
		s.logger.Warn("%s: %s=%d is not a participant of reservation id=%d", op, actor.Role, actor.UserID, reservationID)
		return nil, ErrAccessDenied
	}
	return conv, nil
}

func (s *Service) restoreConversation(ctx context.Context, reservationID int64) (*domain.Conversation, error) {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	conv := &domain.Conversation{
		ReservationID: reservationID,
		UserID:        reservation.UserID,
		DriverID:      reservation.DriverID,
		CreatedAt:     s.now(),
	}
	if err := s.store.SaveConversation(ctx, conv); err != nil {
		return nil, err
	}

	s.logger.Info("conversation for reservation id=%d restored", reservationID)
	return conv, nil
}
