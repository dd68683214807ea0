package catalog

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepo реализует только методы, которые вызываются в тестах
type MockCatalogRepo struct {
	CatalogRepository
	mock.Mock
}

func (m *MockCatalogRepo) ListLocations(ctx context.Context, activeOnly bool) ([]*domain.Location, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

func (m *MockCatalogRepo) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockCatalogRepo) UpdateLocation(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockCatalogRepo) GetVehicleType(ctx context.Context, id int64) (*domain.VehicleType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}

type MockPriceRuleRepo struct {
	PriceRuleRepository
	mock.Mock
}

func (m *MockPriceRuleRepo) Create(ctx context.Context, rule *domain.PriceRule) (*domain.PriceRule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRule), args.Error(1)
}

type MockCouponRepo struct {
	CouponRepository
	mock.Mock
}

func (m *MockCouponRepo) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	args := m.Called(ctx, coupon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

type MockDriverRepo struct {
	DriverRepository
	mock.Mock
}

func newTestService() (*Service, *MockCatalogRepo, *MockPriceRuleRepo, *MockCouponRepo) {
	catalogRepo := new(MockCatalogRepo)
	priceRuleRepo := new(MockPriceRuleRepo)
	couponRepo := new(MockCouponRepo)
	svc := NewService(catalogRepo, priceRuleRepo, couponRepo, new(MockDriverRepo), logger.Nop())
	return svc, catalogRepo, priceRuleRepo, couponRepo
}
