package calculate_price

import (
	"fmt"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FromLocationID <= 0 || req.ToLocationID <= 0 {
		return fmt.Errorf("%w: location ids must be positive", ErrInvalidInput)
	}

	if req.FromLocationID == req.ToLocationID {
		return fmt.Errorf("%w: pickup and drop-off must differ", ErrInvalidInput)
	}

	if req.VehicleTypeID <= 0 {
		return fmt.Errorf("%w: vehicleTypeID must be positive", ErrInvalidInput)
	}

	if !domain.TripType(req.TripType).IsValid() {
		return fmt.Errorf("%w: unknown trip type %q", ErrInvalidInput, req.TripType)
	}

	return nil
}

// uniqueIDs убирает повторы, сохраняя порядок
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
