package domain

import "time"

// SiteSettings are the site-wide values shown on vouchers, e-mails and the
// public settings endpoint. There is a single row; unset fields fall back to
// the service configuration.
type SiteSettings struct {
	CompanyName   string
	SupportPhone  string
	SupportEmail  string
	Website       string
	Currency      string
	VoucherFooter string
	UpdatedAt     time.Time
}

// MergeOver returns s with every empty field taken from defaults
func (s SiteSettings) MergeOver(defaults SiteSettings) SiteSettings {
	pick := func(v, d string) string {
		if v != "" {
			return v
		}
		return d
	}
	return SiteSettings{
		CompanyName:   pick(s.CompanyName, defaults.CompanyName),
		SupportPhone:  pick(s.SupportPhone, defaults.SupportPhone),
		SupportEmail:  pick(s.SupportEmail, defaults.SupportEmail),
		Website:       pick(s.Website, defaults.Website),
		Currency:      pick(s.Currency, defaults.Currency),
		VoucherFooter: pick(s.VoucherFooter, defaults.VoucherFooter),
		UpdatedAt:     s.UpdatedAt,
	}
}
