package catalog

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	priceRuleRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/pricerule"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListPriceRules возвращает правила цены для админки
func (s *Service) ListPriceRules(ctx context.Context, filter domain.PriceRuleFilter) ([]*models.PriceRuleResponse, error) {
	rules, err := s.priceRuleRepo.List(ctx, filter)
	if err != nil {
		return nil, s.repoError("ListPriceRules", err, nil, nil)
	}
	return models.FromDomainPriceRules(rules), nil
}

// CreatePriceRule создает правило цены
// Локации и тип автомобиля должны существовать
func (s *Service) CreatePriceRule(ctx context.Context, req *models.PriceRuleRequest) (*models.PriceRuleResponse, error) {
	rule, err := req.ToDomain(0)
	if err != nil {
		return nil, s.invalidInput("CreatePriceRule", err)
	}

	if err := s.checkRuleReferences(ctx, "CreatePriceRule", rule); err != nil {
		return nil, err
	}

	created, err := s.priceRuleRepo.Create(ctx, rule)
	if err != nil {
		return nil, s.repoError("CreatePriceRule", err, nil, nil)
	}

	s.logger.Info("CreatePriceRule: created rule id=%d %d->%d vehicle=%d price=%.2f",
		created.ID, created.FromLocation, created.ToLocation, created.VehicleTypeID, created.Price)
	return models.FromDomainPriceRule(created), nil
}

// UpdatePriceRule обновляет правило цены
func (s *Service) UpdatePriceRule(ctx context.Context, id int64, req *models.PriceRuleRequest) (*models.PriceRuleResponse, error) {
	rule, err := req.ToDomain(id)
	if err != nil {
		return nil, s.invalidInput("UpdatePriceRule", err)
	}

	if err := s.checkRuleReferences(ctx, "UpdatePriceRule", rule); err != nil {
		return nil, err
	}

	if err := s.priceRuleRepo.Update(ctx, rule); err != nil {
		return nil, s.repoError("UpdatePriceRule", err, priceRuleRepo.ErrPriceRuleNotFound, ErrPriceRuleNotFound)
	}

	s.logger.Info("UpdatePriceRule: updated rule id=%d", id)
	return models.FromDomainPriceRule(rule), nil
}

// DeletePriceRule удаляет правило цены
func (s *Service) DeletePriceRule(ctx context.Context, id int64) error {
	if err := s.priceRuleRepo.Delete(ctx, id); err != nil {
		return s.repoError("DeletePriceRule", err, priceRuleRepo.ErrPriceRuleNotFound, ErrPriceRuleNotFound)
	}

	s.logger.Info("DeletePriceRule: deleted rule id=%d", id)
	return nil
}

func (s *Service) checkRuleReferences(ctx context.Context, op string, rule *domain.PriceRule) error {
	for _, id := range []int64{rule.FromLocation, rule.ToLocation} {
		if _, err := s.catalogRepo.GetLocation(ctx, id); err != nil {
			return s.repoError(op, err, catalogRepo.ErrLocationNotFound, ErrLocationNotFound)
		}
	}
	if _, err := s.catalogRepo.GetVehicleType(ctx, rule.VehicleTypeID); err != nil {
		return s.repoError(op, err, catalogRepo.ErrVehicleTypeNotFound, ErrVehicleTypeNotFound)
	}
	return nil
}
