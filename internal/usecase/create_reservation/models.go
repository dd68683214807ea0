package create_reservation

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Source  domain.ReservationSource // web - форма на сайте, admin - ручной ввод
	UserID  *int64                   // Клиент (для формы - из X-User-ID, если вошёл)
	AdminID *int64                   // Администратор, оформивший бронирование вручную

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	TripType        string
	FromLocationID  int64
	ToLocationID    int64
	VehicleTypeID   int64
	DepartureDate   time.Time
	DepartureTime   types.TimeString
	ReturnDate      *time.Time
	ReturnTime      *types.TimeString
	Passengers      int
	PassengerNames  []string
	FlightCode      *string
	ReturnFlight    *string
	ExtraServiceIDs []int64
	Notes           *string

	SubmittedTotal *float64 // Сумма, которую показал клиенту сайт
	PaymentStatus  *string  // Только для ручного ввода
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation   *domain.Reservation
	ComputedTotal float64 // Пересчитанная на сервере сумма
}
