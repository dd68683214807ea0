package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	SendGrid SendGridConfig `toml:"sendgrid"`
	Pricing  PricingConfig  `toml:"pricing"`
	Jobs     JobsConfig     `toml:"jobs"`
	Site     SiteConfig     `toml:"site"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis (хранилище переписки)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// MessageTTLDays время жизни переписки, 0 = бессрочно
	MessageTTLDays int `toml:"message_ttl_days"`
}

// SendGridConfig настройки отправки ваучеров по почте
type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	Timeout   int    `toml:"timeout"`
}

// PricingConfig настройки расчёта стоимости
type PricingConfig struct {
	// VerifySubmittedTotal - сверять присланную клиентом сумму с пересчитанной на сервере
	VerifySubmittedTotal bool `toml:"verify_submitted_total"`
	// MaxPassengers - максимальное количество пассажиров в одном бронировании
	MaxPassengers int `toml:"max_passengers"`
}

// JobsConfig настройки фоновых задач
type JobsConfig struct {
	CouponExpirySchedule string `toml:"coupon_expiry_schedule"`
}

// SiteConfig типизированные настройки сайта, используются в ваучерах и письмах
type SiteConfig struct {
	CompanyName   string `toml:"company_name"     json:"companyName"`
	SupportPhone  string `toml:"support_phone"    json:"supportPhone"`
	SupportEmail  string `toml:"support_email"    json:"supportEmail"`
	Website       string `toml:"website"          json:"website"`
	Currency      string `toml:"currency"         json:"currency"`
	VoucherFooter string `toml:"voucher_footer"   json:"voucherFooter"`
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "transfer-booking",
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			MessageTTLDays: 90,
		},
		SendGrid: SendGridConfig{
			Timeout: 10,
		},
		Pricing: PricingConfig{
			VerifySubmittedTotal: true,
			MaxPassengers:        16,
		},
		Jobs: JobsConfig{
			CouponExpirySchedule: "@every 1h",
		},
		Site: SiteConfig{
			CompanyName: "SecureDrive Transfer",
			Currency:    "TRY",
		},
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Pricing.MaxPassengers <= 0 {
		return fmt.Errorf("config: pricing.max_passengers must be positive")
	}
	return nil
}
