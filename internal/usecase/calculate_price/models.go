package calculate_price

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	FromLocationID  int64
	ToLocationID    int64
	VehicleTypeID   int64
	TripType        string
	ExtraServiceIDs []int64
	CouponCode      *string    // Купон применяется только если указан
	Date            *time.Time // Дата поездки, по умолчанию сегодня
}

// Calculation результат расчёта, который переиспользует оформление бронирования
type Calculation struct {
	Quote  domain.Quote
	Rule   *domain.PriceRule      // nil, если маршрут не тарифицирован
	Extras []*domain.ExtraService // только активные из запрошенных
}

// ExtraLine строка доп. услуги в ответе
type ExtraLine struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Response модель ответа калькулятора
type Response struct {
	BasePrice   float64      `json:"basePrice"`
	Multiplier  float64      `json:"multiplier"`
	ExtrasTotal float64      `json:"extrasTotal"`
	Subtotal    float64      `json:"subtotal"`
	Discount    float64      `json:"discount"`
	Total       float64      `json:"total"`
	CouponCode  *string      `json:"couponCode,omitempty"`
	PriceRuleID *int64       `json:"priceRuleId,omitempty"`
	Extras      []*ExtraLine `json:"extras"`
	// Bookable false означает, что для маршрута нет цены, бронировать нельзя
	Bookable bool `json:"bookable"`
}

func toResponse(c *Calculation) *Response {
	resp := &Response{
		BasePrice:   c.Quote.BasePrice,
		Multiplier:  c.Quote.Multiplier,
		ExtrasTotal: c.Quote.ExtrasTotal,
		Subtotal:    c.Quote.RawTotal,
		Discount:    c.Quote.Discount,
		Total:       c.Quote.Total,
		CouponCode:  c.Quote.CouponCode,
		Extras:      make([]*ExtraLine, 0, len(c.Extras)),
		Bookable:    c.Quote.IsBookable(),
	}
	if c.Rule != nil {
		id := c.Rule.ID
		resp.PriceRuleID = &id
	}
	for _, e := range c.Extras {
		resp.Extras = append(resp.Extras, &ExtraLine{ID: e.ID, Name: e.Name, Price: e.Price})
	}
	return resp
}
