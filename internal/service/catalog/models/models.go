package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation failed")
)

func invalid(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, v...))
}

// Locations

// LocationRequest запрос на создание/изменение локации
type LocationRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"isActive"`
	Priority int     `json:"priority"`
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
func (r *LocationRequest) ToDomain(id int64) (*domain.Location, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, invalid("name is required")
	}
	t := domain.LocationType(r.Type)
	if !t.IsValid() {
		return nil, invalid("unknown location type %q", r.Type)
	}
	return &domain.Location{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Type:     t,
		Address:  r.Address,
		IsActive: r.IsActive,
		Priority: r.Priority,
	}, nil
}

// LocationResponse ответ с данными локации
type LocationResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"isActive"`
	Priority int     `json:"priority"`
}

// FromDomainLocation конвертирует доменную модель в ответ
func FromDomainLocation(l *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		Type:     string(l.Type),
		Address:  l.Address,
		IsActive: l.IsActive,
		Priority: l.Priority,
	}
}

// FromDomainLocations конвертирует список локаций
func FromDomainLocations(list []*domain.Location) []*LocationResponse {
	out := make([]*LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromDomainLocation(l))
	}
	return out
}

// Vehicle types

// VehicleTypeRequest запрос на создание/изменение типа автомобиля
type VehicleTypeRequest struct {
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Features    []string `json:"features"`
	BasePrice   float64  `json:"basePrice"`
	IsActive    bool     `json:"isActive"`
	Priority    int      `json:"priority"`
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
func (r *VehicleTypeRequest) ToDomain(id int64) (*domain.VehicleType, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, invalid("name is required")
	}
	if r.Capacity <= 0 {
		return nil, invalid("capacity must be positive")
	}
	if r.BasePrice < 0 {
		return nil, invalid("basePrice must not be negative")
	}
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &domain.VehicleType{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Capacity:    r.Capacity,
		Description: r.Description,
		Image:       r.Image,
		Features:    features,
		BasePrice:   r.BasePrice,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
	}, nil
}

// VehicleTypeResponse ответ с данными типа автомобиля
type VehicleTypeResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Features    []string `json:"features"`
	BasePrice   float64  `json:"basePrice"`
	IsActive    bool     `json:"isActive"`
	Priority    int      `json:"priority"`
}

// FromDomainVehicleType конвертирует доменную модель в ответ
func FromDomainVehicleType(v *domain.VehicleType) *VehicleTypeResponse {
	features := v.Features
	if features == nil {
		features = []string{}
	}
	return &VehicleTypeResponse{
		ID:          v.ID,
		Name:        v.Name,
		Capacity:    v.Capacity,
		Description: v.Description,
		Image:       v.Image,
		Features:    features,
		BasePrice:   v.BasePrice,
		IsActive:    v.IsActive,
		Priority:    v.Priority,
	}
}

// FromDomainVehicleTypes конвертирует список типов автомобилей
func FromDomainVehicleTypes(list []*domain.VehicleType) []*VehicleTypeResponse {
	out := make([]*VehicleTypeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromDomainVehicleType(v))
	}
	return out
}

// Extra services

// ExtraServiceRequest запрос на создание/изменение дополнительной услуги
type ExtraServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Icon        *string `json:"icon,omitempty"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	Priority    int     `json:"priority"`
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
func (r *ExtraServiceRequest) ToDomain(id int64) (*domain.ExtraService, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, invalid("name is required")
	}
	if r.Price < 0 {
		return nil, invalid("price must not be negative")
	}
	c := domain.ExtraServiceCategory(r.Category)
	if !c.IsValid() {
		return nil, invalid("unknown category %q", r.Category)
	}
	return &domain.ExtraService{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Icon:        r.Icon,
		Category:    c,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
	}, nil
}

// ExtraServiceResponse ответ с данными дополнительной услуги
type ExtraServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Icon        *string `json:"icon,omitempty"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	Priority    int     `json:"priority"`
}

// FromDomainExtraService конвертирует доменную модель в ответ
func FromDomainExtraService(e *domain.ExtraService) *ExtraServiceResponse {
	return &ExtraServiceResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Icon:        e.Icon,
		Category:    string(e.Category),
		IsActive:    e.IsActive,
		Priority:    e.Priority,
	}
}

// FromDomainExtraServices конвертирует список дополнительных услуг
func FromDomainExtraServices(list []*domain.ExtraService) []*ExtraServiceResponse {
	out := make([]*ExtraServiceResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromDomainExtraService(e))
	}
	return out
}

// Price rules

// PriceRuleRequest запрос на создание/изменение правила цены
type PriceRuleRequest struct {
	FromLocationID int64   `json:"fromLocationId"`
	ToLocationID   int64   `json:"toLocationId"`
	VehicleTypeID  int64   `json:"vehicleTypeId"`
	Price          float64 `json:"price"`
	IsActive       bool    `json:"isActive"`
	ValidFrom      string  `json:"validFrom"`         // "2025-01-01"
	ValidTo        *string `json:"validTo,omitempty"` // "2025-12-31"
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
func (r *PriceRuleRequest) ToDomain(id int64) (*domain.PriceRule, error) {
	if r.FromLocationID <= 0 || r.ToLocationID <= 0 || r.VehicleTypeID <= 0 {
		return nil, invalid("fromLocationId, toLocationId and vehicleTypeId are required")
	}
	if r.FromLocationID == r.ToLocationID {
		return nil, invalid("fromLocationId and toLocationId must differ")
	}
	if r.Price <= 0 {
		return nil, invalid("price must be positive")
	}

	validFrom, err := time.Parse(domain.DateFormat, r.ValidFrom)
	if err != nil {
		return nil, invalid("validFrom must be YYYY-MM-DD")
	}

	rule := &domain.PriceRule{
		ID:            id,
		FromLocation:  r.FromLocationID,
		ToLocation:    r.ToLocationID,
		VehicleTypeID: r.VehicleTypeID,
		Price:         r.Price,
		IsActive:      r.IsActive,
		ValidFrom:     validFrom,
	}

	if r.ValidTo != nil && *r.ValidTo != "" {
		validTo, err := time.Parse(domain.DateFormat, *r.ValidTo)
		if err != nil {
			return nil, invalid("validTo must be YYYY-MM-DD")
		}
		if validTo.Before(validFrom) {
			return nil, invalid("validTo must not be before validFrom")
		}
		rule.ValidTo = &validTo
	}

	return rule, nil
}

// PriceRuleResponse ответ с данными правила цены
type PriceRuleResponse struct {
	ID             int64   `json:"id"`
	FromLocationID int64   `json:"fromLocationId"`
	ToLocationID   int64   `json:"toLocationId"`
	VehicleTypeID  int64   `json:"vehicleTypeId"`
	Price          float64 `json:"price"`
	IsActive       bool    `json:"isActive"`
	ValidFrom      string  `json:"validFrom"`
	ValidTo        *string `json:"validTo,omitempty"`
}

// FromDomainPriceRule конвертирует доменную модель в ответ
func FromDomainPriceRule(r *domain.PriceRule) *PriceRuleResponse {
	resp := &PriceRuleResponse{
		ID:             r.ID,
		FromLocationID: r.FromLocation,
		ToLocationID:   r.ToLocation,
		VehicleTypeID:  r.VehicleTypeID,
		Price:          r.Price,
		IsActive:       r.IsActive,
		ValidFrom:      r.ValidFrom.Format(domain.DateFormat),
	}
	if r.ValidTo != nil {
		validTo := r.ValidTo.Format(domain.DateFormat)
		resp.ValidTo = &validTo
	}
	return resp
}

// FromDomainPriceRules конвертирует список правил цены
func FromDomainPriceRules(list []*domain.PriceRule) []*PriceRuleResponse {
	out := make([]*PriceRuleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainPriceRule(r))
	}
	return out
}

// Coupons

// CouponRequest запрос на создание/изменение купона
type CouponRequest struct {
	Code           string     `json:"code"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  float64    `json:"discountValue"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	IsActive       bool       `json:"isActive"`
	AssignedUserID *int64     `json:"assignedUserId,omitempty"`
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
// Код купона не нормализуется: сравнение идёт с учетом регистра
func (r *CouponRequest) ToDomain(id int64) (*domain.Coupon, error) {
	if r.Code == "" || len(r.Code) > domain.MaxCouponCodeLength {
		return nil, invalid("code is required and must be at most %d characters", domain.MaxCouponCodeLength)
	}
	t := domain.DiscountType(r.DiscountType)
	if !t.IsValid() {
		return nil, invalid("unknown discount type %q", r.DiscountType)
	}
	if r.DiscountValue <= 0 {
		return nil, invalid("discountValue must be positive")
	}
	if t == domain.DiscountPercent && r.DiscountValue > domain.MaxPercentDiscount {
		return nil, invalid("percent discount must not exceed %d", domain.MaxPercentDiscount)
	}
	return &domain.Coupon{
		ID:             id,
		Code:           r.Code,
		DiscountType:   t,
		DiscountValue:  r.DiscountValue,
		ExpiresAt:      r.ExpiresAt,
		IsActive:       r.IsActive,
		AssignedUserID: r.AssignedUserID,
	}, nil
}

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID             int64      `json:"id"`
	Code           string     `json:"code"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  float64    `json:"discountValue"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	IsActive       bool       `json:"isActive"`
	AssignedUserID *int64     `json:"assignedUserId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// FromDomainCoupon конвертирует доменную модель в ответ
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue,
		ExpiresAt:      c.ExpiresAt,
		IsActive:       c.IsActive,
		AssignedUserID: c.AssignedUserID,
		CreatedAt:      c.CreatedAt,
	}
}

// FromDomainCoupons конвертирует список купонов
func FromDomainCoupons(list []*domain.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainCoupon(c))
	}
	return out
}

// Drivers

// DriverRequest запрос на создание/изменение водителя
type DriverRequest struct {
	FullName      string   `json:"fullName"`
	Email         *string  `json:"email,omitempty"`
	Phone         string   `json:"phone"`
	LicenseNumber string   `json:"licenseNumber"`
	VehiclePlate  string   `json:"vehiclePlate"`
	VehicleModel  *string  `json:"vehicleModel,omitempty"`
	VehicleYear   *int     `json:"vehicleYear,omitempty"`
	VehicleColor  *string  `json:"vehicleColor,omitempty"`
	WorkStart     string   `json:"workStart,omitempty"` // "08:00"
	WorkEnd       string   `json:"workEnd,omitempty"`   // "20:00"
	Languages     []string `json:"languages"`
	IsActive      bool     `json:"isActive"`
}

// ToDomain проверяет запрос и конвертирует его в доменную модель
func (r *DriverRequest) ToDomain(id int64) (*domain.Driver, error) {
	if strings.TrimSpace(r.FullName) == "" {
		return nil, invalid("fullName is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return nil, invalid("phone is required")
	}
	if strings.TrimSpace(r.LicenseNumber) == "" || strings.TrimSpace(r.VehiclePlate) == "" {
		return nil, invalid("licenseNumber and vehiclePlate are required")
	}
	if (r.WorkStart == "") != (r.WorkEnd == "") {
		return nil, invalid("workStart and workEnd must be set together")
	}

	d := &domain.Driver{
		ID:            id,
		FullName:      strings.TrimSpace(r.FullName),
		Email:         r.Email,
		Phone:         strings.TrimSpace(r.Phone),
		LicenseNumber: strings.TrimSpace(r.LicenseNumber),
		VehiclePlate:  strings.TrimSpace(r.VehiclePlate),
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VehicleColor:  r.VehicleColor,
		Languages:     r.Languages,
		IsActive:      r.IsActive,
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}

	if r.WorkStart != "" {
		start, err := types.NewTimeStringFromString(r.WorkStart)
		if err != nil {
			return nil, invalid("workStart must be HH:MM")
		}
		end, err := types.NewTimeStringFromString(r.WorkEnd)
		if err != nil {
			return nil, invalid("workEnd must be HH:MM")
		}
		d.WorkStart, d.WorkEnd = start, end
	}

	return d, nil
}

// DriverResponse ответ с данными водителя
type DriverResponse struct {
	ID             int64    `json:"id"`
	FullName       string   `json:"fullName"`
	Email          *string  `json:"email,omitempty"`
	Phone          string   `json:"phone"`
	LicenseNumber  string   `json:"licenseNumber"`
	VehiclePlate   string   `json:"vehiclePlate"`
	VehicleModel   *string  `json:"vehicleModel,omitempty"`
	VehicleYear    *int     `json:"vehicleYear,omitempty"`
	VehicleColor   *string  `json:"vehicleColor,omitempty"`
	WorkStart      string   `json:"workStart,omitempty"`
	WorkEnd        string   `json:"workEnd,omitempty"`
	Languages      []string `json:"languages"`
	Rating         float64  `json:"rating"`
	TotalTrips     int      `json:"totalTrips"`
	CompletedTrips int      `json:"completedTrips"`
	IsActive       bool     `json:"isActive"`
}

// FromDomainDriver конвертирует доменную модель в ответ
func FromDomainDriver(d *domain.Driver) *DriverResponse {
	languages := d.Languages
	if languages == nil {
		languages = []string{}
	}
	return &DriverResponse{
		ID:             d.ID,
		FullName:       d.FullName,
		Email:          d.Email,
		Phone:          d.Phone,
		LicenseNumber:  d.LicenseNumber,
		VehiclePlate:   d.VehiclePlate,
		VehicleModel:   d.VehicleModel,
		VehicleYear:    d.VehicleYear,
		VehicleColor:   d.VehicleColor,
		WorkStart:      d.WorkStart.String(),
		WorkEnd:        d.WorkEnd.String(),
		Languages:      languages,
		Rating:         d.Rating,
		TotalTrips:     d.TotalTrips,
		CompletedTrips: d.CompletedTrips,
		IsActive:       d.IsActive,
	}
}

// FromDomainDrivers конвертирует список водителей
func FromDomainDrivers(list []*domain.Driver) []*DriverResponse {
	out := make([]*DriverResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDomainDriver(d))
	}
	return out
}
