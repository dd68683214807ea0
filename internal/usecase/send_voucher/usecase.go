package send_voucher

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/internal/integrations/sendgrid"
	"github.com/mfkayan044/securedrive-sub000/internal/voucher"
)

// UseCase use case генерации и отправки ваучеров
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	mailer          Mailer
	metrics         Metrics
	settings        SettingsProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	mailer Mailer,
	metrics Metrics,
	settings SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		mailer:          mailer,
		metrics:         metrics,
		settings:        settings,
		logger:          logger,
	}
}

// RenderPDF рисует ваучер по данным, присланным клиентом (старый формат)
func (uc *UseCase) RenderPDF(ctx context.Context, req *PDFRequest) (*Document, error) {
	data, err := uc.legacyData(req.Details, req.Locations, req.VehicleTypes)
	if err != nil {
		return nil, err
	}

	doc, err := uc.render(ctx, data, channelPDF)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RenderVoucher: voucher %s rendered (%d bytes)", data.ReservationNumber, len(doc.Content))
	return doc, nil
}

// SendEmail рисует ваучер и отправляет его письмом с PDF во вложении
func (uc *UseCase) SendEmail(ctx context.Context, req *EmailRequest) error {
	to := strings.TrimSpace(req.To)
	if _, err := mail.ParseAddress(to); err != nil {
		uc.logger.Warn("SendVoucher: invalid recipient %q", req.To)
		return fmt.Errorf("%w: invalid recipient", ErrInvalidInput)
	}

	data, err := uc.legacyData(req.Details, req.Locations, req.VehicleTypes)
	if err != nil {
		return err
	}
	if data.ReservationNumber == "" {
		data.ReservationNumber = strings.TrimSpace(req.VoucherCode)
	}
	if data.CustomerName == "" {
		data.CustomerName = strings.TrimSpace(req.Name)
	}

	settings := uc.settings.VoucherSettings(ctx)
	doc, err := uc.renderWith(data, settings, channelEmail)
	if err != nil {
		return err
	}

	msg := &sendgrid.Message{
		ToEmail:   to,
		ToName:    firstNonEmpty(req.Name, data.CustomerName),
		Subject:   fmt.Sprintf("%s - Transfer Voucher %s", settings.CompanyName, firstNonEmpty(data.ReservationNumber, voucher.Placeholder)),
		PlainText: plainBody(data, settings),
		Attachments: []sendgrid.Attachment{
			{Filename: doc.Filename, ContentType: "application/pdf", Content: doc.Content},
		},
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Error("SendVoucher: failed to send voucher %s to %s: %v", data.ReservationNumber, to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("SendVoucher: voucher %s sent to %s", data.ReservationNumber, to)
	return nil
}

// RenderReservation рисует ваучер по сохранённому бронированию
// Доступ: администратор, владелец бронирования, назначенный водитель
func (uc *UseCase) RenderReservation(ctx context.Context, id int64, actor domain.Actor) (*Document, error) {
	reservation, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RenderReservationVoucher: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RenderReservationVoucher: failed to get reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleCustomer:
		if !reservation.IsOwnedBy(actor.UserID) {
			return nil, ErrAccessDenied
		}
	case domain.RoleDriver:
		if !reservation.IsAssignedTo(actor.UserID) {
			return nil, ErrAccessDenied
		}
	default:
		return nil, ErrAccessDenied
	}

	from, err := uc.locationName(ctx, reservation.FromLocation)
	if err != nil {
		return nil, err
	}
	to, err := uc.locationName(ctx, reservation.ToLocation)
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicleName(ctx, reservation.VehicleTypeID)
	if err != nil {
		return nil, err
	}

	return uc.render(ctx, voucher.FromReservation(reservation, from, to, vehicle), channelDownload)
}

func (uc *UseCase) legacyData(details []byte, locations, vehicleTypes []map[string]interface{}) (voucher.Data, error) {
	data, err := voucher.FromLegacyPayload(details, locations, vehicleTypes)
	if err != nil {
		uc.logger.Warn("RenderVoucher: %v", err)
		return voucher.Data{}, fmt.Errorf("%w: %v", ErrMalformedDetails, err)
	}
	return data, nil
}

func (uc *UseCase) render(ctx context.Context, data voucher.Data, channel string) (*Document, error) {
	return uc.renderWith(data, uc.settings.VoucherSettings(ctx), channel)
}

func (uc *UseCase) renderWith(data voucher.Data, settings voucher.Settings, channel string) (*Document, error) {
	content, err := voucher.Render(data, settings)
	if err != nil {
		uc.logger.Error("RenderVoucher: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	uc.metrics.VoucherRendered(channel)
	return &Document{Filename: voucher.FileName(data.ReservationNumber), Content: content}, nil
}

// locationName для удалённой локации ваучер всё равно строится, с прочерком
func (uc *UseCase) locationName(ctx context.Context, id int64) (string, error) {
	loc, err := uc.catalogRepo.GetLocation(ctx, id)
	if errors.Is(err, catalogRepo.ErrLocationNotFound) {
		uc.logger.Warn("RenderReservationVoucher: location id=%d not found", id)
		return "", nil
	}
	if err != nil {
		uc.logger.Error("RenderReservationVoucher: failed to get location id=%d: %v", id, err)
		return "", fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}
	return loc.Name, nil
}

func (uc *UseCase) vehicleName(ctx context.Context, id int64) (string, error) {
	vt, err := uc.catalogRepo.GetVehicleType(ctx, id)
	if errors.Is(err, catalogRepo.ErrVehicleTypeNotFound) {
		uc.logger.Warn("RenderReservationVoucher: vehicle type id=%d not found", id)
		return "", nil
	}
	if err != nil {
		uc.logger.Error("RenderReservationVoucher: failed to get vehicle type id=%d: %v", id, err)
		return "", fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
	}
	return vt.Name, nil
}

func plainBody(d voucher.Data, s voucher.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sayın %s,\n\n", firstNonEmpty(d.CustomerName, voucher.Placeholder))
	fmt.Fprintf(&b, "%s numaralı transfer rezervasyonunuzun voucher belgesi ektedir.\n", firstNonEmpty(d.ReservationNumber, voucher.Placeholder))
	if s.SupportPhone != "" || s.SupportEmail != "" {
		fmt.Fprintf(&b, "\nİletişim: %s\n", strings.TrimSpace(s.SupportPhone+" "+s.SupportEmail))
	}
	fmt.Fprintf(&b, "\n%s\n", s.CompanyName)
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
