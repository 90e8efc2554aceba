package listeners

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/eventbus"
	"project-dashboard/pkg/websocket"
)

// Broadcaster - рассылка всем websocket-клиентам.
type Broadcaster interface {
	Broadcast(payload interface{}, messageType string) error
}

// DashboardCache - инвалидация и прогрев кеша дашборда.
type DashboardCache interface {
	Invalidate(ctx context.Context) error
	Warm(ctx context.Context) error
}

// DashboardListener на каждое изменение данных шлёт клиентам dashboard.refresh,
// а пересборку кеша откладывает на debounce, чтобы пачка изменений дала одну пересборку.
type DashboardListener struct {
	hub       Broadcaster
	dashboard DashboardCache
	debounce  time.Duration
	logger    *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
}

func NewDashboardListener(hub Broadcaster, dashboard DashboardCache, debounce time.Duration, logger *zap.Logger) *DashboardListener {
	return &DashboardListener{hub: hub, dashboard: dashboard, debounce: debounce, logger: logger}
}

// Events - события, на которые подписывается слушатель.
func (l *DashboardListener) Events() []string {
	return []string{
		constants.EventProjectChanged,
		constants.EventTechnicalRequestChanged,
		constants.EventClearanceRequestChanged,
		constants.EventClearanceRequestImported,
	}
}

func (l *DashboardListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(l.Handle, l.Events()...)
}

func (l *DashboardListener) Handle(ctx context.Context, event eventbus.Event) error {
	changed, ok := event.(eventbus.EntityChanged)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T для %s", event, event.Name())
	}

	payload := websocket.RefreshPayload{
		Reason:   changed.EventName,
		Action:   changed.Action,
		EntityID: changed.EntityID,
		Count:    changed.Count,
	}
	if err := l.hub.Broadcast(payload, constants.WSMessageDashboardRefresh); err != nil {
		l.logger.Error("Не удалось разослать обновление дашборда", zap.Error(err))
	}

	if l.debounce <= 0 {
		return l.rebuild(ctx)
	}
	l.schedule()
	return nil
}

// schedule открывает окно от первого события; события внутри окна его не продлевают,
// поэтому поток изменений не откладывает пересборку дольше debounce.
func (l *DashboardListener) schedule() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		return
	}
	// t пишется и читается под l.mu
	var t *time.Timer
	t = time.AfterFunc(l.debounce, func() {
		l.mu.Lock()
		if l.timer == t {
			l.timer = nil
		}
		l.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := l.rebuild(ctx); err != nil {
			l.logger.Warn("Отложенная пересборка дашборда не удалась", zap.Error(err))
		}
	})
	l.timer = t
}

func (l *DashboardListener) rebuild(ctx context.Context) error {
	if err := l.dashboard.Invalidate(ctx); err != nil {
		l.logger.Warn("Не удалось очистить кеш дашборда", zap.Error(err))
	}
	return l.dashboard.Warm(ctx)
}

// Stop отменяет отложенную пересборку.
func (l *DashboardListener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
