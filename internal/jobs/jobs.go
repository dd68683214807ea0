package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// runTimeout ограничение времени одного запуска задачи
const runTimeout = 30 * time.Second

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler фоновые задачи по расписанию cron (UTC)
type Scheduler struct {
	cron       *cron.Cron
	couponRepo CouponRepository
	logger     Logger
	now        func() time.Time
}

// NewScheduler создает планировщик и регистрирует задачи
// couponExpirySchedule - выражение cron или дескриптор вида "@every 1h"
func NewScheduler(couponRepo CouponRepository, couponExpirySchedule string, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		couponRepo: couponRepo,
		logger:     logger,
		now:        time.Now,
	}

	if _, err := s.cron.AddFunc(couponExpirySchedule, func() {
		s.runWithRecovery("DeactivateExpiredCoupons", s.DeactivateExpiredCoupons)
	}); err != nil {
		return nil, fmt.Errorf("jobs: invalid coupon expiry schedule %q: %w", couponExpirySchedule, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: started with %d job(s)", len(s.cron.Entries()))
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler: stopped")
	case <-ctx.Done():
		s.logger.Error("Scheduler: stop timed out: %v", ctx.Err())
	}
}

// DeactivateExpiredCoupons выключает купоны с истекшим сроком действия
func (s *Scheduler) DeactivateExpiredCoupons(ctx context.Context) error {
	n, err := s.couponRepo.DeactivateExpired(ctx, s.now().UTC())
	if err != nil {
		return fmt.Errorf("deactivate expired coupons: %w", err)
	}
	if n > 0 {
		s.logger.Info("DeactivateExpiredCoupons: %d coupon(s) deactivated", n)
	}
	return nil
}

func (s *Scheduler) runWithRecovery(name string, job func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("%s: job panicked: %v", name, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := job(ctx); err != nil {
		s.logger.Error("%s: %v", name, err)
	}
}
