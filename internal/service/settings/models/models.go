package models

import "github.com/mfkayan044/securedrive-sub000/internal/domain"

// SettingsResponse публичные настройки сайта
type SettingsResponse struct {
	CompanyName   string `json:"companyName"`
	SupportPhone  string `json:"supportPhone"`
	SupportEmail  string `json:"supportEmail"`
	Website       string `json:"website"`
	Currency      string `json:"currency"`
	VoucherFooter string `json:"voucherFooter"`
}

// UpdateSettingsRequest запрос на изменение настроек
// nil поле не меняется, пустая строка возвращает значение из конфигурации
type UpdateSettingsRequest struct {
	CompanyName   *string `json:"companyName"`
	SupportPhone  *string `json:"supportPhone"`
	SupportEmail  *string `json:"supportEmail"`
	Website       *string `json:"website"`
	Currency      *string `json:"currency"`
	VoucherFooter *string `json:"voucherFooter"`
}

// FromDomain конвертирует доменные настройки в ответ
func FromDomain(s domain.SiteSettings) *SettingsResponse {
	return &SettingsResponse{
		CompanyName:   s.CompanyName,
		SupportPhone:  s.SupportPhone,
		SupportEmail:  s.SupportEmail,
		Website:       s.Website,
		Currency:      s.Currency,
		VoucherFooter: s.VoucherFooter,
	}
}
