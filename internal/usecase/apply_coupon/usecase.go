package apply_coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	couponRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/coupon"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
)

// UseCase use case применения купона к бронированию на шаге оплаты
// Сумма бронирования не меняется, скидка хранится отдельно
type UseCase struct {
	reservationRepo ReservationRepository
	couponRepo      CouponRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	couponRepo CouponRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		couponRepo:      couponRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute применяет купон
// Повторное применение заменяет прежний купон, скидка всегда считается от исходной суммы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := strings.TrimSpace(req.Code)
	uc.logger.Info("ApplyCoupon: reservation id=%d, code=%q, %s=%d", req.ReservationID, code, req.Actor.Role, req.Actor.UserID)

	if code == "" || utf8.RuneCountInString(code) > domain.MaxCouponCodeLength {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}

	// 1. Купон
	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("ApplyCoupon: coupon %q not found", code)
			return nil, ErrCouponNotFound
		}
		uc.logger.Error("ApplyCoupon: failed to get coupon %q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	switch err := coupon.CheckUsable(uc.timeProvider.Now()); {
	case errors.Is(err, domain.ErrCouponInactive):
		uc.logger.Warn("ApplyCoupon: coupon %q is inactive", code)
		return nil, ErrCouponInactive
	case errors.Is(err, domain.ErrCouponExpired):
		uc.logger.Warn("ApplyCoupon: coupon %q is expired", code)
		return nil, ErrCouponExpired
	}

	var resp *Response

	// 2. Бронирование читается с блокировкой строки
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ApplyCoupon: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ApplyCoupon: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if req.Actor.Role != domain.RoleAdmin && !reservation.IsOwnedBy(req.Actor.UserID) {
			uc.logger.Warn("ApplyCoupon: %s=%d does not own reservation id=%d", req.Actor.Role, req.Actor.UserID, req.ReservationID)
			return ErrAccessDenied
		}

		if reservation.PaymentStatus != domain.PaymentPending || reservation.Status.IsTerminal() {
			uc.logger.Warn("ApplyCoupon: reservation id=%d is %s/%s", req.ReservationID, reservation.Status, reservation.PaymentStatus)
			return ErrNotPayable
		}

		discount := coupon.DiscountFor(reservation.TotalPrice)
		if err := uc.reservationRepo.ApplyDiscount(txCtx, reservation.ID, coupon.Code, discount); err != nil {
			uc.logger.Error("ApplyCoupon: failed to apply discount to reservation id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to apply discount: %v", ErrInternal, err)
		}

		reservation.CouponCode = &coupon.Code
		reservation.DiscountAmount = discount
		resp = &Response{
			ReservationID: reservation.ID,
			CouponCode:    coupon.Code,
			TotalPrice:    reservation.TotalPrice,
			Discount:      discount,
			PayableTotal:  reservation.PayableTotal(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApplyCoupon: reservation id=%d discount=%.2f payable=%.2f", resp.ReservationID, resp.Discount, resp.PayableTotal)
	return resp, nil
}
