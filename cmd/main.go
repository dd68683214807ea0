package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	applyCouponHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/apply_coupon"
	calculatePriceHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/calculate_price"
	catalogHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/catalog"
	conversationsHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/conversations"
	createReservationHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/list_reservations"
	reservationActionHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/reservation_action"
	settingsHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/settings"
	updatePaymentStatusHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/update_payment_status"
	vouchersHandler "github.com/mfkayan044/securedrive-sub000/internal/api/handlers/vouchers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/config"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	catalogRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/catalog"
	couponRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/coupon"
	customerRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/customer"
	driverRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/driver"
	messagesStore "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/messages"
	priceRuleRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/pricerule"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	settingsRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/settings"
	sendgridClient "github.com/mfkayan044/securedrive-sub000/internal/integrations/sendgrid"
	"github.com/mfkayan044/securedrive-sub000/internal/jobs"
	catalogService "github.com/mfkayan044/securedrive-sub000/internal/service/catalog"
	messagingService "github.com/mfkayan044/securedrive-sub000/internal/service/messaging"
	reservationsService "github.com/mfkayan044/securedrive-sub000/internal/service/reservations"
	settingsService "github.com/mfkayan044/securedrive-sub000/internal/service/settings"
	applyCouponUC "github.com/mfkayan044/securedrive-sub000/internal/usecase/apply_coupon"
	calculatePriceUC "github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
	createReservationUC "github.com/mfkayan044/securedrive-sub000/internal/usecase/create_reservation"
	sendVoucherUC "github.com/mfkayan044/securedrive-sub000/internal/usecase/send_voucher"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/mfkayan044/securedrive-sub000/pkg/metrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting transfer booking service...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики: при выключенных metricsCollector остаётся nil, все потребители это допускают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	db := dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(db)

	// Redis для переписки
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Репозитории
	catalogRepository := catalogRepo.NewRepository(db)
	couponRepository := couponRepo.NewRepository(db)
	customerRepository := customerRepo.NewRepository(db)
	driverRepository := driverRepo.NewRepository(db)
	priceRuleRepository := priceRuleRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	messageStore := messagesStore.NewStore(redisClient, time.Duration(cfg.Redis.MessageTTLDays)*24*time.Hour)

	// Интеграции
	mailer := sendgridClient.NewClient(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		"",
		time.Duration(cfg.SendGrid.Timeout)*time.Second,
		log,
	)
	if cfg.SendGrid.APIKey == "" {
		log.Warn("SendGrid API key is empty, voucher e-mails will be rejected")
	}

	// Сервисы
	messagingSvc := messagingService.NewService(messageStore, reservationRepository, log)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		priceRuleRepository,
		couponRepository,
		driverRepository,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		driverRepository,
		messagingSvc,
		txMgr,
		metricsCollector,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, domain.SiteSettings{
		CompanyName:   cfg.Site.CompanyName,
		SupportPhone:  cfg.Site.SupportPhone,
		SupportEmail:  cfg.Site.SupportEmail,
		Website:       cfg.Site.Website,
		Currency:      cfg.Site.Currency,
		VoucherFooter: cfg.Site.VoucherFooter,
	}, log)

	// Use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		priceRuleRepository,
		catalogRepository,
		couponRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		calculatePriceUseCase,
		reservationRepository,
		catalogRepository,
		customerRepository,
		messagingSvc,
		txMgr,
		metricsCollector,
		log,
		createReservationUC.Options{
			VerifySubmittedTotal: cfg.Pricing.VerifySubmittedTotal,
			MaxPassengers:        cfg.Pricing.MaxPassengers,
		},
	)
	applyCouponUseCase := applyCouponUC.NewUseCase(
		reservationRepository,
		couponRepository,
		txMgr,
		log,
	)
	sendVoucherUseCase := sendVoucherUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		mailer,
		metricsCollector,
		settingsSvc,
		log,
	)

	// Фоновые задачи
	scheduler, err := jobs.NewScheduler(couponRepository, cfg.Jobs.CouponExpirySchedule, log)
	if err != nil {
		log.Fatal("Failed to initialize scheduler: %v", err)
	}
	scheduler.Start()

	// Handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createAdminReservation := createReservationHandler.NewAdminHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	reservationAction := reservationActionHandler.NewHandler(reservationsSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(reservationsSvc, log)
	applyCoupon := applyCouponHandler.NewHandler(applyCouponUseCase, log)
	vouchers := vouchersHandler.NewHandler(sendVoucherUseCase, log)
	conversations := conversationsHandler.NewHandler(messagingSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Калькулятор стоимости
	public.HandleFunc("/quotes", calculatePrice.Handle).Methods(http.MethodPost)

	// Справочники и настройки сайта
	public.HandleFunc("/locations", catalog.ListLocations).Methods(http.MethodGet)
	public.HandleFunc("/vehicle-types", catalog.ListVehicleTypes).Methods(http.MethodGet)
	public.HandleFunc("/extra-services", catalog.ListExtraServices).Methods(http.MethodGet)
	public.HandleFunc("/settings", settings.Get).Methods(http.MethodGet)

	// Бронирование с сайта, в том числе без учетной записи
	public.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Ваучеры по данным клиента, 405 для остальных методов отдаёт сам handler
	public.HandleFunc("/vouchers/pdf", vouchers.PDF)
	public.HandleFunc("/vouchers/email", vouchers.Email).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/actions", reservationAction.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/coupon", applyCoupon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/voucher", vouchers.Reservation).Methods(http.MethodGet)

	// --- Переписка ---
	protected.HandleFunc("/conversations/{reservationId}/messages", conversations.List).Methods(http.MethodGet)
	protected.HandleFunc("/conversations/{reservationId}/messages", conversations.Send).Methods(http.MethodPost)
	protected.HandleFunc("/conversations/{reservationId}/read", conversations.MarkRead).Methods(http.MethodPost)
	protected.HandleFunc("/conversations/{reservationId}/ws", conversations.Stream).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireRole(domain.RoleAdmin))

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", createAdminReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{reservationId}/payment-status", updatePaymentStatus.Handle).Methods(http.MethodPatch)

	// --- Справочники ---
	admin.HandleFunc("/locations", catalog.AdminListLocations).Methods(http.MethodGet)
	admin.HandleFunc("/locations", catalog.CreateLocation).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{id}", catalog.UpdateLocation).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id}", catalog.DeleteLocation).Methods(http.MethodDelete)

	admin.HandleFunc("/vehicle-types", catalog.AdminListVehicleTypes).Methods(http.MethodGet)
	admin.HandleFunc("/vehicle-types", catalog.CreateVehicleType).Methods(http.MethodPost)
	admin.HandleFunc("/vehicle-types/{id}", catalog.UpdateVehicleType).Methods(http.MethodPut)
	admin.HandleFunc("/vehicle-types/{id}", catalog.DeleteVehicleType).Methods(http.MethodDelete)

	admin.HandleFunc("/extra-services", catalog.AdminListExtraServices).Methods(http.MethodGet)
	admin.HandleFunc("/extra-services", catalog.CreateExtraService).Methods(http.MethodPost)
	admin.HandleFunc("/extra-services/{id}", catalog.UpdateExtraService).Methods(http.MethodPut)
	admin.HandleFunc("/extra-services/{id}", catalog.DeleteExtraService).Methods(http.MethodDelete)

	admin.HandleFunc("/price-rules", catalog.ListPriceRules).Methods(http.MethodGet)
	admin.HandleFunc("/price-rules", catalog.CreatePriceRule).Methods(http.MethodPost)
	admin.HandleFunc("/price-rules/{id}", catalog.UpdatePriceRule).Methods(http.MethodPut)
	admin.HandleFunc("/price-rules/{id}", catalog.DeletePriceRule).Methods(http.MethodDelete)

	admin.HandleFunc("/coupons", catalog.ListCoupons).Methods(http.MethodGet)
	admin.HandleFunc("/coupons", catalog.CreateCoupon).Methods(http.MethodPost)
	admin.HandleFunc("/coupons/{id}", catalog.UpdateCoupon).Methods(http.MethodPut)
	admin.HandleFunc("/coupons/{id}", catalog.DeleteCoupon).Methods(http.MethodDelete)

	// --- Водители ---
	admin.HandleFunc("/drivers", catalog.ListDrivers).Methods(http.MethodGet)
	admin.HandleFunc("/drivers", catalog.CreateDriver).Methods(http.MethodPost)
	admin.HandleFunc("/drivers/{id}", catalog.GetDriver).Methods(http.MethodGet)
	admin.HandleFunc("/drivers/{id}", catalog.UpdateDriver).Methods(http.MethodPut)

	// --- Настройки сайта ---
	admin.HandleFunc("/settings", settings.Update).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	scheduler.Stop(shutdownCtx)

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
