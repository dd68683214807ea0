package catalog

import (
	"context"
	"errors"

	couponRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/coupon"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListCoupons возвращает все купоны
func (s *Service) ListCoupons(ctx context.Context) ([]*models.CouponResponse, error) {
	coupons, err := s.couponRepo.List(ctx)
	if err != nil {
		return nil, s.repoError("ListCoupons", err, nil, nil)
	}
	return models.FromDomainCoupons(coupons), nil
}

// CreateCoupon создает купон
func (s *Service) CreateCoupon(ctx context.Context, req *models.CouponRequest) (*models.CouponResponse, error) {
	coupon, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreateCoupon", err)
	}

	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCodeTaken) {
			s.logger.Warn("CreateCoupon: code %s already exists", coupon.Code)
			return nil, ErrCouponCodeTaken
		}
		return nil, s.repoError("CreateCoupon", err, nil, nil)
	}

	s.logger.Info("CreateCoupon: created coupon id=%d code=%s", created.ID, created.Code)
	return models.FromDomainCoupon(created), nil
}

// UpdateCoupon обновляет купон
func (s *Service) UpdateCoupon(ctx context.Context, id int64, req *models.CouponRequest) (*models.CouponResponse, error) {
	coupon, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdateCoupon", err)
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		if errors.Is(err, couponRepo.ErrCodeTaken) {
			s.logger.Warn("UpdateCoupon: code %s already exists", coupon.Code)
			return nil, ErrCouponCodeTaken
		}
		return nil, s.repoError("UpdateCoupon", err, couponRepo.ErrCouponNotFound, ErrCouponNotFound)
	}

	updated, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("UpdateCoupon", err, couponRepo.ErrCouponNotFound, ErrCouponNotFound)
	}

	s.logger.Info("UpdateCoupon: updated coupon id=%d", id)
	return models.FromDomainCoupon(updated), nil
}

// DeleteCoupon удаляет купон
func (s *Service) DeleteCoupon(ctx context.Context, id int64) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return s.repoError("DeleteCoupon", err, couponRepo.ErrCouponNotFound, ErrCouponNotFound)
	}

	s.logger.Info("DeleteCoupon: deleted coupon id=%d", id)
	return nil
}
