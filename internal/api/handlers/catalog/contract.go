package catalog

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

type CatalogService interface {
	ListLocations(ctx context.Context, activeOnly bool) ([]*models.LocationResponse, error)
	CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, req *models.LocationRequest) (*models.LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*models.VehicleTypeResponse, error)
	CreateVehicleType(ctx context.Context, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error)
	UpdateVehicleType(ctx context.Context, id int64, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error)
	DeleteVehicleType(ctx context.Context, id int64) error

	ListExtraServices(ctx context.Context, activeOnly bool) ([]*models.ExtraServiceResponse, error)
	CreateExtraService(ctx context.Context, req *models.ExtraServiceRequest) (*models.ExtraServiceResponse, error)
	UpdateExtraService(ctx context.Context, id int64, req *models.ExtraServiceRequest) (*models.ExtraServiceResponse, error)
	DeleteExtraService(ctx context.Context, id int64) error

	ListPriceRules(ctx context.Context, filter domain.PriceRuleFilter) ([]*models.PriceRuleResponse, error)
	CreatePriceRule(ctx context.Context, req *models.PriceRuleRequest) (*models.PriceRuleResponse, error)
	UpdatePriceRule(ctx context.Context, id int64, req *models.PriceRuleRequest) (*models.PriceRuleResponse, error)
	DeletePriceRule(ctx context.Context, id int64) error

	ListCoupons(ctx context.Context) ([]*models.CouponResponse, error)
	CreateCoupon(ctx context.Context, req *models.CouponRequest) (*models.CouponResponse, error)
	UpdateCoupon(ctx context.Context, id int64, req *models.CouponRequest) (*models.CouponResponse, error)
	DeleteCoupon(ctx context.Context, id int64) error

	ListDrivers(ctx context.Context, activeOnly bool) ([]*models.DriverResponse, error)
	GetDriver(ctx context.Context, id int64) (*models.DriverResponse, error)
	CreateDriver(ctx context.Context, req *models.DriverRequest) (*models.DriverResponse, error)
	UpdateDriver(ctx context.Context, id int64, req *models.DriverRequest) (*models.DriverResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
