package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mfkayan044/securedrive-sub000/internal/service/settings"
	"github.com/mfkayan044/securedrive-sub000/internal/service/settings/models"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

type MockSettingsService struct{ mock.Mock }

func (m *MockSettingsService) Get(ctx context.Context) (*models.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsResponse), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsResponse), args.Error(1)
}

func TestGet(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get", mock.Anything).Return(&models.SettingsResponse{CompanyName: "SecureDrive", Currency: "EUR"}, nil)
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SecureDrive"`)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"ok", `{"supportPhone":"+90 555 000 00 00"}`, nil, http.StatusOK},
		{"invalid email", `{"supportEmail":"nope"}`, settings.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", `{"currency":"TRY"}`, errors.New("boom"), http.StatusInternalServerError},
		{"empty body", ``, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSettingsService)
			if tt.body != "" {
				if tt.err != nil {
					svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.err)
				} else {
					svc.On("Update", mock.Anything, mock.Anything).Return(&models.SettingsResponse{}, nil)
				}
			}
			h := NewHandler(svc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
