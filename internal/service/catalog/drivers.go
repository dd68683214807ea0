package catalog

import (
	"context"

	driverRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/driver"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListDrivers возвращает водителей
func (s *Service) ListDrivers(ctx context.Context, activeOnly bool) ([]*models.DriverResponse, error) {
	drivers, err := s.driverRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, s.repoError("ListDrivers", err, nil, nil)
	}
	return models.FromDomainDrivers(drivers), nil
}

// GetDriver возвращает водителя по ID
func (s *Service) GetDriver(ctx context.Context, id int64) (*models.DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("GetDriver", err, driverRepo.ErrDriverNotFound, ErrDriverNotFound)
	}
	return models.FromDomainDriver(d), nil
}

// CreateDriver создает водителя
func (s *Service) CreateDriver(ctx context.Context, req *models.DriverRequest) (*models.DriverResponse, error) {
	d, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreateDriver", err)
	}

	created, err := s.driverRepo.Create(ctx, d)
	if err != nil {
		return nil, s.repoError("CreateDriver", err, nil, nil)
	}

	s.logger.Info("CreateDriver: created driver id=%d", created.ID)
	return models.FromDomainDriver(created), nil
}

// UpdateDriver обновляет профиль водителя
func (s *Service) UpdateDriver(ctx context.Context, id int64, req *models.DriverRequest) (*models.DriverResponse, error) {
	d, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdateDriver", err)
	}

	if err := s.driverRepo.Update(ctx, d); err != nil {
		return nil, s.repoError("UpdateDriver", err, driverRepo.ErrDriverNotFound, ErrDriverNotFound)
	}

	updated, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("UpdateDriver", err, driverRepo.ErrDriverNotFound, ErrDriverNotFound)
	}

	s.logger.Info("UpdateDriver: updated driver id=%d", id)
	return models.FromDomainDriver(updated), nil
}
