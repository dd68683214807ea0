package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	couponRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/coupon"
	priceRuleRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/pricerule"
)

// UseCase use case расчёта стоимости трансфера
type UseCase struct {
	priceRuleRepo PriceRuleRepository
	extraRepo     ExtraServiceRepository
	couponRepo    CouponRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	priceRuleRepo PriceRuleRepository,
	extraRepo ExtraServiceRepository,
	couponRepo CouponRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		priceRuleRepo: priceRuleRepo,
		extraRepo:     extraRepo,
		couponRepo:    couponRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute рассчитывает стоимость для калькулятора на сайте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	calc, err := uc.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return toResponse(calc), nil
}

// Compute рассчитывает стоимость:
// база по ценовому правилу (0, если правила нет) x множитель поездки + активные доп. услуги - скидка купона
func (uc *UseCase) Compute(ctx context.Context, req *Request) (*Calculation, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	date := uc.timeProvider.Now()
	if req.Date != nil {
		date = *req.Date
	}

	uc.logger.Info("CalculatePrice: from=%d, to=%d, vehicle=%d, trip=%s, extras=%v, date=%s",
		req.FromLocationID, req.ToLocationID, req.VehicleTypeID, req.TripType, req.ExtraServiceIDs, date.Format(domain.DateFormat))

	// 2. Базовая цена маршрута
	var basePrice float64
	rule, err := uc.priceRuleRepo.FindApplicable(ctx, req.FromLocationID, req.ToLocationID, req.VehicleTypeID, date)
	switch {
	case err == nil:
		basePrice = rule.Price
	case errors.Is(err, priceRuleRepo.ErrPriceRuleNotFound):
		rule = nil
		uc.logger.Warn("CalculatePrice: no price rule for from=%d, to=%d, vehicle=%d",
			req.FromLocationID, req.ToLocationID, req.VehicleTypeID)
	default:
		uc.logger.Error("CalculatePrice: failed to find price rule: %v", err)
		return nil, fmt.Errorf("%w: failed to find price rule: %v", ErrInternal, err)
	}

	// 3. Доп. услуги, неизвестные и выключенные не учитываются
	extras, err := uc.extraRepo.GetActiveExtraServicesByIDs(ctx, uniqueIDs(req.ExtraServiceIDs))
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to get extra services: %v", err)
		return nil, fmt.Errorf("%w: failed to get extra services: %v", ErrInternal, err)
	}

	// 4. Купон
	var coupon *domain.Coupon
	if req.CouponCode != nil && strings.TrimSpace(*req.CouponCode) != "" {
		coupon, err = uc.usableCoupon(ctx, strings.TrimSpace(*req.CouponCode))
		if err != nil {
			return nil, err
		}
	}

	quote := domain.ComputeQuote(basePrice, domain.TripType(req.TripType), extras, coupon)

	uc.logger.Info("CalculatePrice: base=%.2f, extras=%.2f, discount=%.2f, total=%.2f, bookable=%t",
		quote.BasePrice, quote.ExtrasTotal, quote.Discount, quote.Total, quote.IsBookable())

	return &Calculation{Quote: quote, Rule: rule, Extras: extras}, nil
}

// usableCoupon находит купон по точному коду и проверяет, что он активен и не истёк
func (uc *UseCase) usableCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("CalculatePrice: coupon %q not found", code)
			return nil, ErrCouponNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get coupon %q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	switch err := coupon.CheckUsable(uc.timeProvider.Now()); {
	case errors.Is(err, domain.ErrCouponInactive):
		uc.logger.Warn("CalculatePrice: coupon %q is inactive", code)
		return nil, ErrCouponInactive
	case errors.Is(err, domain.ErrCouponExpired):
		uc.logger.Warn("CalculatePrice: coupon %q is expired", code)
		return nil, ErrCouponExpired
	}

	return coupon, nil
}
