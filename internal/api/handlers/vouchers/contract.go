package vouchers

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	sendVoucher "github.com/mfkayan044/securedrive-sub000/internal/usecase/send_voucher"
)

type VoucherUseCase interface {
	RenderPDF(ctx context.Context, req *sendVoucher.PDFRequest) (*sendVoucher.Document, error)
	SendEmail(ctx context.Context, req *sendVoucher.EmailRequest) error
	RenderReservation(ctx context.Context, id int64, actor domain.Actor) (*sendVoucher.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
