package domain

import "time"

// ExtraServiceCategory группа дополнительных услуг
type ExtraServiceCategory string

const (
	CategorySafety        ExtraServiceCategory = "safety"
	CategoryComfort       ExtraServiceCategory = "comfort"
	CategoryService       ExtraServiceCategory = "service"
	CategoryAccessibility ExtraServiceCategory = "accessibility"
)

// IsValid returns true for known categories
func (c ExtraServiceCategory) IsValid() bool {
	switch c {
	case CategorySafety, CategoryComfort, CategoryService, CategoryAccessibility:
		return true
	}
	return false
}

// ExtraService represents a flat-priced add-on (child seat, meet & greet, ...)
type ExtraService struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Icon        *string
	Category    ExtraServiceCategory
	IsActive    bool
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
