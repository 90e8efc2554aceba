package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DashboardRefresher периодически прогревает кеш дашборда.
type DashboardRefresher struct {
	cron      *cron.Cron
	dashboard DashboardServiceInterface
	spec      string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewDashboardRefresher(spec string, dashboard DashboardServiceInterface, logger *zap.Logger) *DashboardRefresher {
	return &DashboardRefresher{
		cron:      cron.New(),
		dashboard: dashboard,
		spec:      spec,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

func (r *DashboardRefresher) Start() error {
	_, err := r.cron.AddFunc(r.spec, func() { r.Refresh(context.Background()) })
	if err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("Прогрев кеша дашборда запланирован", zap.String("spec", r.spec))
	return nil
}

// Refresh прогревает кеш сразу; ошибки только логируются.
func (r *DashboardRefresher) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	if err := r.dashboard.Warm(ctx); err != nil {
		r.logger.Warn("Не удалось прогреть кеш дашборда", zap.Error(err))
		return
	}
	r.logger.Debug("Кеш дашборда прогрет", zap.Duration("took", time.Since(start)))
}

func (r *DashboardRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}
