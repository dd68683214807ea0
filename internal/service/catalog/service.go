package catalog

import (
	"errors"
	"fmt"
)

// Service сервис справочников: публичные списки и администрирование
// (локации, типы автомобилей, дополнительные услуги, правила цены, купоны, водители)
type Service struct {
	catalogRepo   CatalogRepository
	priceRuleRepo PriceRuleRepository
	couponRepo    CouponRepository
	driverRepo    DriverRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	catalogRepo CatalogRepository,
	priceRuleRepo PriceRuleRepository,
	couponRepo CouponRepository,
	driverRepo DriverRepository,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:   catalogRepo,
		priceRuleRepo: priceRuleRepo,
		couponRepo:    couponRepo,
		driverRepo:    driverRepo,
		logger:        logger,
	}
}

// repoError переводит ошибку репозитория в ошибку сервиса
// repoNotFound - sentinel "не найдено" конкретного репозитория, notFound - соответствующая ошибка сервиса
func (s *Service) repoError(op string, err, repoNotFound, notFound error) error {
	if repoNotFound != nil && errors.Is(err, repoNotFound) {
		s.logger.Warn("%s: %v", op, err)
		return notFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// invalidInput логирует и оборачивает ошибку валидации запроса
func (s *Service) invalidInput(op string, err error) error {
	s.logger.Warn("%s: invalid input: %v", op, err)
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
