package catalog

import (
	"context"

	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListLocations возвращает локации по приоритету
// Публичный список содержит только активные локации
func (s *Service) ListLocations(ctx context.Context, activeOnly bool) ([]*models.LocationResponse, error) {
	locations, err := s.catalogRepo.ListLocations(ctx, activeOnly)
	if err != nil {
		return nil, s.repoError("ListLocations", err, nil, nil)
	}
	return models.FromDomainLocations(locations), nil
}

// CreateLocation создает локацию
func (s *Service) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error) {
	location, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreateLocation", err)
	}

	created, err := s.catalogRepo.CreateLocation(ctx, location)
	if err != nil {
		return nil, s.repoError("CreateLocation", err, nil, nil)
	}

	s.logger.Info("CreateLocation: created location id=%d name=%s", created.ID, created.Name)
	return models.FromDomainLocation(created), nil
}

// UpdateLocation обновляет локацию
func (s *Service) UpdateLocation(ctx context.Context, id int64, req *models.LocationRequest) (*models.LocationResponse, error) {
	location, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdateLocation", err)
	}

	if err := s.catalogRepo.UpdateLocation(ctx, location); err != nil {
		return nil, s.repoError("UpdateLocation", err, catalogRepo.ErrLocationNotFound, ErrLocationNotFound)
	}

	s.logger.Info("UpdateLocation: updated location id=%d", id)
	return models.FromDomainLocation(location), nil
}

// DeleteLocation удаляет локацию
func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteLocation(ctx, id); err != nil {
		return s.repoError("DeleteLocation", err, catalogRepo.ErrLocationNotFound, ErrLocationNotFound)
	}

	s.logger.Info("DeleteLocation: deleted location id=%d", id)
	return nil
}
