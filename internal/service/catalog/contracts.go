package catalog

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListLocations(ctx context.Context, activeOnly bool) ([]*domain.Location, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	CreateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error)
	UpdateLocation(ctx context.Context, location *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error

	ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*domain.VehicleType, error)
	GetVehicleType(ctx context.Context, id int64) (*domain.VehicleType, error)
	CreateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error)
	UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) error
	DeleteVehicleType(ctx context.Context, id int64) error

	ListExtraServices(ctx context.Context, activeOnly bool) ([]*domain.ExtraService, error)
	GetExtraService(ctx context.Context, id int64) (*domain.ExtraService, error)
	CreateExtraService(ctx context.Context, es *domain.ExtraService) (*domain.ExtraService, error)
	UpdateExtraService(ctx context.Context, es *domain.ExtraService) error
	DeleteExtraService(ctx context.Context, id int64) error
}

// PriceRuleRepository интерфейс репозитория правил цены
type PriceRuleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PriceRule, error)
	List(ctx context.Context, filter domain.PriceRuleFilter) ([]*domain.PriceRule, error)
	Create(ctx context.Context, rule *domain.PriceRule) (*domain.PriceRule, error)
	Update(ctx context.Context, rule *domain.PriceRule) error
	Delete(ctx context.Context, id int64) error
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Coupon, error)
	List(ctx context.Context) ([]*domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id int64) error
}

// DriverRepository интерфейс репозитория водителей
type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Driver, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
