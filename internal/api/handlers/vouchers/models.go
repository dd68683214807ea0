package vouchers

import "encoding/json"

// PDFRequest HTTP request model
// reservationDetails может прийти объектом или JSON строкой
type PDFRequest struct {
	ReservationDetails json.RawMessage          `json:"reservationDetails"`
	Locations          []map[string]interface{} `json:"locations"`
	VehicleTypes       []map[string]interface{} `json:"vehicleTypes"`
}

// EmailRequest HTTP request model
type EmailRequest struct {
	To                 string                   `json:"to"`
	Name               string                   `json:"name"`
	VoucherCode        string                   `json:"voucherCode"`
	ReservationDetails json.RawMessage          `json:"reservationDetails"`
	Locations          []map[string]interface{} `json:"locations"`
	VehicleTypes       []map[string]interface{} `json:"vehicleTypes"`
}

// EmailResponse ответ на отправку письма
type EmailResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
