package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	customerRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/customer"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
)

// maxNumberAttempts сколько раз генерируется номер бронирования при коллизии
const maxNumberAttempts = 3

// Options настройки оформления бронирования
type Options struct {
	// VerifySubmittedTotal - отклонять бронирование, если присланная сумма не совпадает с пересчитанной
	VerifySubmittedTotal bool
	MaxPassengers        int
}

// UseCase use case оформления бронирования (форма на сайте и ручной ввод администратором)
type UseCase struct {
	calculator      PriceCalculator
	reservationRepo ReservationRepository
	vehicleRepo     VehicleTypeRepository
	customerRepo    CustomerRepository
	conversations   ConversationCreator
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	opts            Options
	newNumber       func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calculator PriceCalculator,
	reservationRepo ReservationRepository,
	vehicleRepo VehicleTypeRepository,
	customerRepo CustomerRepository,
	conversations ConversationCreator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	return &UseCase{
		calculator:      calculator,
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		customerRepo:    customerRepo,
		conversations:   conversations,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		opts:            opts,
		newNumber:       newReservationNumber,
	}
}

// Execute выполняет use case оформления бронирования
// Бронирование, его доп. услуги и счетчик клиента пишутся в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: source=%s, from=%d, to=%d, vehicle=%d, trip=%s, date=%s, passengers=%d",
		req.Source, req.FromLocationID, req.ToLocationID, req.VehicleTypeID, req.TripType,
		req.DepartureDate.Format(domain.DateFormat), req.Passengers)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.opts.MaxPassengers); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateDates(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 2. Автомобиль существует, включён и вмещает пассажиров
	vehicle, err := uc.vehicleRepo.GetVehicleType(ctx, req.VehicleTypeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVehicleTypeNotFound) {
			uc.logger.Warn("CreateReservation: vehicle type id=%d not found", req.VehicleTypeID)
			return nil, ErrVehicleTypeNotFound
		}
		uc.logger.Error("CreateReservation: failed to get vehicle type id=%d: %v", req.VehicleTypeID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
	}
	if !vehicle.IsActive {
		uc.logger.Warn("CreateReservation: vehicle type id=%d is inactive", req.VehicleTypeID)
		return nil, ErrVehicleTypeNotFound
	}
	if !vehicle.Fits(req.Passengers) {
		uc.logger.Warn("CreateReservation: %d passengers do not fit vehicle id=%d (capacity %d)",
			req.Passengers, vehicle.ID, vehicle.Capacity)
		return nil, ErrTooManyPassengers
	}

	// 3. Пересчитываем стоимость на дату отправления, купон применяется позже на шаге оплаты
	departure := req.DepartureDate
	calc, err := uc.calculator.Compute(ctx, &calculate_price.Request{
		FromLocationID:  req.FromLocationID,
		ToLocationID:    req.ToLocationID,
		VehicleTypeID:   req.VehicleTypeID,
		TripType:        req.TripType,
		ExtraServiceIDs: req.ExtraServiceIDs,
		Date:            &departure,
	})
	if err != nil {
		if errors.Is(err, calculate_price.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateReservation: failed to compute price: %v", err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	if !calc.Quote.IsBookable() {
		uc.logger.Warn("CreateReservation: route from=%d to=%d vehicle=%d is not priced",
			req.FromLocationID, req.ToLocationID, req.VehicleTypeID)
		return nil, ErrRouteNotPriced
	}

	total := calc.Quote.Total
	if req.SubmittedTotal != nil && !sameAmount(*req.SubmittedTotal, calc.Quote.Total) {
		if uc.opts.VerifySubmittedTotal {
			uc.logger.Warn("CreateReservation: submitted total %.2f differs from computed %.2f",
				*req.SubmittedTotal, calc.Quote.Total)
			return nil, fmt.Errorf("%w: expected %.2f", ErrPriceMismatch, calc.Quote.Total)
		}
		uc.logger.Warn("CreateReservation: submitted total %.2f differs from computed %.2f, keeping submitted",
			*req.SubmittedTotal, calc.Quote.Total)
		total = *req.SubmittedTotal
	}

	reservation := uc.buildReservation(req, total)
	extras := make([]domain.ReservationExtra, 0, len(calc.Extras))
	for _, e := range calc.Extras {
		extras = append(extras, domain.ReservationExtra{ExtraServiceID: e.ID, Name: e.Name, Price: e.Price})
	}

	// 4. Сохраняем в сериализуемой транзакции
	// При коллизии номера транзакция повторяется целиком с новым номером
	for attempt := 1; ; attempt++ {
		reservation.ReservationNumber = uc.newNumber()

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			return uc.save(txCtx, reservation, extras)
		})
		if !errors.Is(err, reservationRepo.ErrNumberTaken) || attempt == maxNumberAttempts {
			break
		}
		uc.logger.Warn("CreateReservation: reservation number %s taken, retrying", reservation.ReservationNumber)
	}
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	reservation.Extras = extras
	uc.metrics.ReservationCreated(string(reservation.Source), string(reservation.TripType))
	uc.logger.Info("CreateReservation: reservation id=%d number=%s created, total=%.2f",
		reservation.ID, reservation.ReservationNumber, reservation.TotalPrice)

	// 5. Переписка по бронированию, ошибка не отменяет бронирование
	if err := uc.conversations.CreateConversation(ctx, reservation.ID, reservation.UserID, req.AdminID); err != nil {
		uc.logger.Warn("CreateReservation: failed to create conversation for reservation id=%d: %v", reservation.ID, err)
	}

	return &Response{Reservation: reservation, ComputedTotal: calc.Quote.Total}, nil
}

func (uc *UseCase) save(ctx context.Context, reservation *domain.Reservation, extras []domain.ReservationExtra) error {
	if _, err := uc.reservationRepo.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrNumberTaken) {
			return err
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	if err := uc.reservationRepo.AddExtras(ctx, reservation.ID, extras); err != nil {
		uc.logger.Error("CreateReservation: failed to save extras for reservation id=%d: %v", reservation.ID, err)
		return fmt.Errorf("%w: failed to save extras: %v", ErrInternal, err)
	}

	if reservation.UserID != nil {
		err := uc.customerRepo.IncrementReservationCount(ctx, *reservation.UserID)
		switch {
		case errors.Is(err, customerRepo.ErrCustomerNotFound):
			// профиль клиента ещё не создан, бронирование всё равно принимаем
			uc.logger.Warn("CreateReservation: customer id=%d has no profile", *reservation.UserID)
		case err != nil:
			uc.logger.Error("CreateReservation: failed to increment reservations of customer id=%d: %v", *reservation.UserID, err)
			return fmt.Errorf("%w: failed to update customer: %v", ErrInternal, err)
		}
	}

	return nil
}

func (uc *UseCase) buildReservation(req *Request, total float64) *domain.Reservation {
	r := &domain.Reservation{
		UserID:         req.UserID,
		Source:         req.Source,
		CustomerName:   strings.TrimSpace(req.CustomerName),
		CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
		TripType:       domain.TripType(req.TripType),
		FromLocation:   req.FromLocationID,
		ToLocation:     req.ToLocationID,
		VehicleTypeID:  req.VehicleTypeID,
		DepartureDate:  req.DepartureDate,
		DepartureTime:  req.DepartureTime,
		Passengers:     req.Passengers,
		PassengerNames: domain.ResizePassengerNames(req.PassengerNames, req.Passengers),
		FlightCode:     cleanOptional(req.FlightCode),
		TotalPrice:     total,
		Status:         domain.StatusPending,
		PaymentStatus:  domain.PaymentPending,
		Notes:          cleanOptional(req.Notes),
	}

	if r.TripType == domain.TripRoundTrip {
		r.ReturnDate = req.ReturnDate
		r.ReturnTime = req.ReturnTime
		r.ReturnFlight = cleanOptional(req.ReturnFlight)
	}

	if req.Source == domain.SourceAdmin && req.PaymentStatus != nil {
		r.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
	}

	return r
}

// newReservationNumber короткий код бронирования для ваучера, например 9F3A61C2
func newReservationNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:domain.ReservationNumberLength])
}
