package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

// MockCatalogService встраивает интерфейс, не используемые в тестах методы паникуют
type MockCatalogService struct {
	CatalogService
	mock.Mock
}

func (m *MockCatalogService) ListLocations(ctx context.Context, activeOnly bool) ([]*models.LocationResponse, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LocationResponse), args.Error(1)
}

func (m *MockCatalogService) CreateCoupon(ctx context.Context, req *models.CouponRequest) (*models.CouponResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CouponResponse), args.Error(1)
}

func (m *MockCatalogService) DeleteVehicleType(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) ListPriceRules(ctx context.Context, filter domain.PriceRuleFilter) ([]*models.PriceRuleResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PriceRuleResponse), args.Error(1)
}

func TestListLocations_PublicIsActiveOnly(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListLocations", mock.Anything, true).Return([]*models.LocationResponse{{ID: 1, Name: "IST"}}, nil)
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()

	h.ListLocations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/locations?all=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"IST"`)
	svc.AssertExpectations(t)
}

func TestAdminListLocations_All(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListLocations", mock.Anything, false).Return([]*models.LocationResponse{}, nil)
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()

	h.AdminListLocations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/locations?all=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateCoupon_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"taken", `{"code":"SAVE10"}`, catalog.ErrCouponCodeTaken, http.StatusConflict},
		{"invalid", `{"code":""}`, catalog.ErrInvalidInput, http.StatusBadRequest},
		{"bad body", `{"code":`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.err != nil {
				svc.On("CreateCoupon", mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			h := NewHandler(svc, logger.Nop())
			rec := httptest.NewRecorder()

			h.CreateCoupon(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteVehicleType(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("DeleteVehicleType", mock.Anything, int64(3)).Return(nil)
	svc.On("DeleteVehicleType", mock.Anything, int64(4)).Return(catalog.ErrVehicleTypeNotFound)
	h := NewHandler(svc, logger.Nop())

	del := func(id string) int {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.DeleteVehicleType(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, del("3"))
	assert.Equal(t, http.StatusNotFound, del("4"))
	assert.Equal(t, http.StatusBadRequest, del("zero"))
}

func TestListPriceRules_Filter(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListPriceRules", mock.Anything, mock.MatchedBy(func(f domain.PriceRuleFilter) bool {
		return f.FromLocation != nil && *f.FromLocation == 1 && f.ToLocation == nil && f.ActiveOnly
	})).Return([]*models.PriceRuleResponse{}, nil)
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.ListPriceRules(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/price-rules?fromLocationId=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ListPriceRules(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/price-rules?vehicleTypeId=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
