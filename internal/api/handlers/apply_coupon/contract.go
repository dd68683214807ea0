package apply_coupon

import (
	"context"

	applyCoupon "github.com/mfkayan044/securedrive-sub000/internal/usecase/apply_coupon"
)

type ApplyCouponUseCase interface {
	Execute(ctx context.Context, req *applyCoupon.Request) (*applyCoupon.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
