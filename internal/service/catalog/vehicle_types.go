package catalog

import (
	"context"

	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListVehicleTypes возвращает типы автомобилей по приоритету
func (s *Service) ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*models.VehicleTypeResponse, error) {
	vehicleTypes, err := s.catalogRepo.ListVehicleTypes(ctx, activeOnly)
	if err != nil {
		return nil, s.repoError("ListVehicleTypes", err, nil, nil)
	}
	return models.FromDomainVehicleTypes(vehicleTypes), nil
}

// CreateVehicleType создает тип автомобиля
func (s *Service) CreateVehicleType(ctx context.Context, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error) {
	vt, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreateVehicleType", err)
	}

	created, err := s.catalogRepo.CreateVehicleType(ctx, vt)
	if err != nil {
		return nil, s.repoError("CreateVehicleType", err, nil, nil)
	}

	s.logger.Info("CreateVehicleType: created vehicle type id=%d name=%s", created.ID, created.Name)
	return models.FromDomainVehicleType(created), nil
}

// UpdateVehicleType обновляет тип автомобиля
func (s *Service) UpdateVehicleType(ctx context.Context, id int64, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error) {
	vt, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdateVehicleType", err)
	}

	if err := s.catalogRepo.UpdateVehicleType(ctx, vt); err != nil {
		return nil, s.repoError("UpdateVehicleType", err, catalogRepo.ErrVehicleTypeNotFound, ErrVehicleTypeNotFound)
	}

	s.logger.Info("UpdateVehicleType: updated vehicle type id=%d", id)
	return models.FromDomainVehicleType(vt), nil
}

// DeleteVehicleType удаляет тип автомобиля
func (s *Service) DeleteVehicleType(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteVehicleType(ctx, id); err != nil {
		return s.repoError("DeleteVehicleType", err, catalogRepo.ErrVehicleTypeNotFound, ErrVehicleTypeNotFound)
	}

	s.logger.Info("DeleteVehicleType: deleted vehicle type id=%d", id)
	return nil
}
