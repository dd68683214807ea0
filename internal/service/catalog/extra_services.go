package catalog

import (
	"context"

	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListExtraServices возвращает дополнительные услуги по приоритету
func (s *Service) ListExtraServices(ctx context.Context, activeOnly bool) ([]*models.ExtraServiceResponse, error) {
	services, err := s.catalogRepo.ListExtraServices(ctx, activeOnly)
	if err != nil {
		return nil, s.repoError("ListExtraServices", err, nil, nil)
	}
	return models.FromDomainExtraServices(services), nil
}

// CreateExtraService создает дополнительную услугу
func (s *Service) CreateExtraService(ctx context.Context, req *models.ExtraServiceRequest) (*models.ExtraServiceResponse, error) {
	es, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreateExtraService", err)
	}

	created, err := s.catalogRepo.CreateExtraService(ctx, es)
	if err != nil {
		return nil, s.repoError("CreateExtraService", err, nil, nil)
	}

	s.logger.Info("CreateExtraService: created extra service id=%d name=%s", created.ID, created.Name)
	return models.FromDomainExtraService(created), nil
}

// UpdateExtraService обновляет дополнительную услугу
// Уже созданные бронирования хранят копию имени и цены и не меняются
func (s *Service) UpdateExtraService(ctx context.Context, id int64, req *models.ExtraServiceRequest) (*models.ExtraServiceResponse, error) {
	es, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdateExtraService", err)
	}

	if err := s.catalogRepo.UpdateExtraService(ctx, es); err != nil {
		return nil, s.repoError("UpdateExtraService", err, catalogRepo.ErrExtraServiceNotFound, ErrExtraServiceNotFound)
	}

	s.logger.Info("UpdateExtraService: updated extra service id=%d", id)
	return models.FromDomainExtraService(es), nil
}

// DeleteExtraService удаляет дополнительную услугу
func (s *Service) DeleteExtraService(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteExtraService(ctx, id); err != nil {
		return s.repoError("DeleteExtraService", err, catalogRepo.ErrExtraServiceNotFound, ErrExtraServiceNotFound)
	}

	s.logger.Info("DeleteExtraService: deleted extra service id=%d", id)
	return nil
}
