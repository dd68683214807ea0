package send_voucher

import "encoding/json"

// Каналы для метрики ваучеров
const (
	channelPDF      = "pdf"
	channelEmail    = "email"
	channelDownload = "download"
)

// PDFRequest запрос на ваучер по данным, присланным клиентом
type PDFRequest struct {
	Details      json.RawMessage
	Locations    []map[string]interface{}
	VehicleTypes []map[string]interface{}
}

// EmailRequest запрос на отправку ваучера по почте
type EmailRequest struct {
	To           string
	Name         string
	VoucherCode  string
	Details      json.RawMessage
	Locations    []map[string]interface{}
	VehicleTypes []map[string]interface{}
}

// Document готовый PDF
type Document struct {
	Filename string
	Content  []byte
}
