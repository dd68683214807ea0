package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	driverRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/driver"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations/models"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
)

// Service сервис бронирований: просмотр, списки по ролям, действия жизненного цикла, оплата
type Service struct {
	reservationRepo ReservationRepository
	driverRepo      DriverRepository
	messenger       Messenger
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	driverRepo DriverRepository,
	messenger Messenger,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		driverRepo:      driverRepo,
		messenger:       messenger,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только свои бронирования, водитель - только назначенные ему, администратор - все
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for %s=%d", id, actor.Role, actor.UserID)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !canAccess(reservation, actor) {
		s.logger.Warn("GetByID: access denied for %s=%d to reservation id=%d", actor.Role, actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, actor.Role), nil
}

// List получает список бронирований
// Для клиента и водителя фильтр по владельцу подставляется принудительно
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter from %s=%d: %v", actor.Role, actor.UserID, err)
		return nil, err
	}

	switch actor.Role {
	case domain.RoleCustomer:
		filter.UserID = &actor.UserID
		filter.DriverID = nil
	case domain.RoleDriver:
		filter.DriverID = &actor.UserID
		filter.UserID = nil
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for %s=%d: %v", actor.Role, actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for %s=%d", len(reservations), actor.Role, actor.UserID)
	return models.FromDomainReservationList(reservations, actor.Role), nil
}

// ApplyAction выполняет действие жизненного цикла (confirm, assign, start, complete, cancel)
//
// Правила:
// - переход определяется единой таблицей domain.NextStatus
// - роль должна иметь право на действие (domain.CanPerform)
// - водитель действует только над назначенными ему бронированиями, клиент - только над своими
// - смена статуса пишется с проверкой текущего статуса, параллельное изменение даёт ErrStatusChanged
//
// После фиксации в переписку бронирования отправляется системное сообщение (best effort)
func (s *Service) ApplyAction(ctx context.Context, id int64, actor domain.Actor, req *models.ActionRequest) (*models.ActionResponse, error) {
	action := domain.ReservationAction(req.Action)
	s.logger.Info("ApplyAction: %s=%d requests %s on reservation id=%d", actor.Role, actor.UserID, action, id)

	// 1. Проверяем действие и права роли
	if !action.IsValid() {
		s.logger.Warn("ApplyAction: unknown action %q", req.Action)
		s.metrics.TransitionObserved(string(action), outcomeRejected)
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
	if !domain.CanPerform(actor.Role, action) {
		s.logger.Warn("ApplyAction: role %s may not %s", actor.Role, action)
		s.metrics.TransitionObserved(string(action), outcomeRejected)
		return nil, ErrActionForbidden
	}
	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var updated *domain.Reservation

	// 2. Читаем, проверяем и пишем в одной транзакции
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.getReservation(ctx, "ApplyAction", id)
		if err != nil {
			return err
		}

		if !canAccess(reservation, actor) {
			s.logger.Warn("ApplyAction: access denied for %s=%d to reservation id=%d", actor.Role, actor.UserID, id)
			return ErrAccessDenied
		}

		next, err := domain.NextStatus(reservation.Status, action)
		if err != nil {
			s.logger.Warn("ApplyAction: reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}

		update := reservationRepo.StatusUpdate{}
		switch action {
		case domain.ActionAssign:
			if err := s.checkDriver(ctx, req.DriverID); err != nil {
				return err
			}
			update.DriverID = req.DriverID
		case domain.ActionCancel:
			if req.CancellationReason != nil && strings.TrimSpace(*req.CancellationReason) != "" {
				reason := strings.TrimSpace(*req.CancellationReason)
				update.CancellationReason = &reason
			}
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, reservation.Status, next, update); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusChanged) {
				s.logger.Warn("ApplyAction: reservation id=%d changed concurrently (expected %s)", id, reservation.Status)
				return ErrStatusChanged
			}
			s.logger.Error("ApplyAction: update status for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: ApplyAction - update status: %v", ErrInternal, err)
		}

		if next == domain.StatusCompleted && reservation.DriverID != nil {
			if err := s.driverRepo.IncrementCompletedTrips(ctx, *reservation.DriverID); err != nil {
				s.logger.Error("ApplyAction: increment trips for driver id=%d: %v", *reservation.DriverID, err)
				return fmt.Errorf("%w: ApplyAction - increment trips: %v", ErrInternal, err)
			}
		}

		reservation.Status = next
		if update.DriverID != nil {
			reservation.DriverID = update.DriverID
		}
		if update.CancellationReason != nil {
			reservation.CancellationReason = update.CancellationReason
		}
		updated = reservation
		return nil
	})
	if err != nil {
		s.metrics.TransitionObserved(string(action), outcomeFor(err))
		return nil, err
	}

	s.metrics.TransitionObserved(string(action), outcomeAccepted)

	// 3. Уведомление (не влияет на результат)
	notice := domain.TransitionNotice(actor.Role, action)
	s.logger.Info("ApplyAction: reservation id=%d is now %s: %s", id, updated.Status, notice)
	s.notify(ctx, updated, action, notice)

	return &models.ActionResponse{
		Reservation: models.FromDomainReservation(updated, actor.Role),
		Notice:      notice,
	}, nil
}

// UpdatePaymentStatus обновляет статус оплаты (только администратор)
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, actor domain.Actor, status string) (*models.ReservationResponse, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	paymentStatus := domain.PaymentStatus(status)
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, status)
	}

	if err := s.reservationRepo.UpdatePaymentStatus(ctx, id, paymentStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdatePaymentStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdatePaymentStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePaymentStatus: reservation id=%d payment status=%s", id, paymentStatus)

	reservation, err := s.getReservation(ctx, "UpdatePaymentStatus", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation, actor.Role), nil
}

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) checkDriver(ctx context.Context, driverID *int64) error {
	if driverID == nil || *driverID <= 0 {
		return ErrDriverRequired
	}

	d, err := s.driverRepo.GetByID(ctx, *driverID)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			s.logger.Warn("ApplyAction: driver id=%d not found", *driverID)
			return ErrDriverNotFound
		}
		s.logger.Error("ApplyAction: driver repository error: %v", err)
		return fmt.Errorf("%w: ApplyAction - get driver: %v", ErrInternal, err)
	}

	if !d.IsActive {
		s.logger.Warn("ApplyAction: driver id=%d is inactive", *driverID)
		return ErrDriverInactive
	}
	return nil
}

func (s *Service) notify(ctx context.Context, reservation *domain.Reservation, action domain.ReservationAction, notice string) {
	if s.messenger == nil {
		return
	}
	if action == domain.ActionAssign && reservation.DriverID != nil {
		if err := s.messenger.AttachDriver(ctx, reservation.ID, *reservation.DriverID); err != nil {
			s.logger.Warn("ApplyAction: attach driver to conversation %d: %v", reservation.ID, err)
		}
	}
	if notice == "" {
		return
	}
	if err := s.messenger.PostSystemMessage(ctx, reservation.ID, notice); err != nil {
		s.logger.Warn("ApplyAction: post notice to conversation %d: %v", reservation.ID, err)
	}
}

func canAccess(r *domain.Reservation, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCustomer:
		return r.IsOwnedBy(actor.UserID)
	case domain.RoleDriver:
		return r.IsAssignedTo(actor.UserID)
	}
	return false
}

func outcomeFor(err error) string {
	if errors.Is(err, ErrStatusChanged) {
		return outcomeConflict
	}
	return outcomeRejected
}

func toDomainFilter(req *models.ListRequest) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{}
	if req == nil {
		return filter, nil
	}

	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}
	if req.PaymentStatus != nil {
		paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
		if !paymentStatus.IsValid() {
			return filter, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *req.PaymentStatus)
		}
		filter.PaymentStatus = &paymentStatus
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return filter, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	filter.From = req.From
	filter.To = req.To
	filter.UserID = req.UserID
	filter.DriverID = req.DriverID
	filter.Limit = req.Limit
	filter.Offset = req.Offset

	return filter, nil
}
