package listeners

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/eventbus"
	"project-dashboard/pkg/websocket"
)

type fakeHub struct {
	mu       sync.Mutex
	payloads []websocket.RefreshPayload
	types    []string
}

func (h *fakeHub) Broadcast(payload interface{}, messageType string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.payloads = append(h.payloads, payload.(websocket.RefreshPayload))
	h.types = append(h.types, messageType)
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated int
	warmed      int
	warmErr     error
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

func (c *fakeCache) Warm(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warmed++
	return c.warmErr
}

func (c *fakeCache) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated, c.warmed
}

func TestDashboardListener_BroadcastsAndRebuilds(t *testing.T) {
	hub := &fakeHub{}
	cache := &fakeCache{}
	l := NewDashboardListener(hub, cache, 0, zap.NewNop())

	err := l.Handle(context.Background(), eventbus.EntityChanged{
		EventName: constants.EventTechnicalRequestChanged,
		Action:    "update",
		EntityID:  7,
	})
	require.NoError(t, err)

	require.Len(t, hub.payloads, 1)
	assert.Equal(t, constants.WSMessageDashboardRefresh, hub.types[0])
	assert.Equal(t, websocket.RefreshPayload{Reason: constants.EventTechnicalRequestChanged, Action: "update", EntityID: 7}, hub.payloads[0])

	inv, warm := cache.counts()
	assert.Equal(t, 1, inv)
	assert.Equal(t, 1, warm)
}

func TestDashboardListener_WarmErrorReturned(t *testing.T) {
	cache := &fakeCache{warmErr: errors.New("db down")}
	l := NewDashboardListener(&fakeHub{}, cache, 0, zap.NewNop())

	err := l.Handle(context.Background(), eventbus.EntityChanged{EventName: constants.EventProjectChanged})
	assert.EqualError(t, err, "db down")
}

type otherEvent struct{}

func (otherEvent) Name() string { return "other" }

func TestDashboardListener_RejectsUnknownEvent(t *testing.T) {
	hub := &fakeHub{}
	l := NewDashboardListener(hub, &fakeCache{}, 0, zap.NewNop())

	assert.Error(t, l.Handle(context.Background(), otherEvent{}))
	assert.Empty(t, hub.payloads)
}

func TestDashboardListener_DebounceCoalesces(t *testing.T) {
	hub := &fakeHub{}
	cache := &fakeCache{}
	l := NewDashboardListener(hub, cache, 20*time.Millisecond, zap.NewNop())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Handle(context.Background(), eventbus.EntityChanged{EventName: constants.EventProjectChanged, EntityID: int64(i)}))
	}
	// каждое событие рассылается сразу
	assert.Len(t, hub.payloads, 5)

	assert.Eventually(t, func() bool {
		_, warm := cache.counts()
		return warm == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	_, warm := cache.counts()
	assert.Equal(t, 1, warm)
}

func TestDashboardListener_ThroughBus(t *testing.T) {
	hub := &fakeHub{}
	cache := &fakeCache{}
	bus := eventbus.New(zap.NewNop())
	l := NewDashboardListener(hub, cache, 0, zap.NewNop())
	l.Register(bus)

	bus.Publish(eventbus.EntityChanged{EventName: constants.EventClearanceRequestImported, Action: "import", Count: 12})
	bus.Publish(eventbus.EntityChanged{EventName: "unrelated.event"})
	bus.Wait()

	require.Len(t, hub.payloads, 1)
	assert.Equal(t, 12, hub.payloads[0].Count)
	_, warm := cache.counts()
	assert.Equal(t, 1, warm)
}

func TestDashboardListener_SteadyStreamStillRebuilds(t *testing.T) {
	cache := &fakeCache{}
	l := NewDashboardListener(&fakeHub{}, cache, 40*time.Millisecond, zap.NewNop())
	defer l.Stop()

	// события идут чаще окна: пересборка всё равно должна случиться до конца потока
	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.NoError(t, l.Handle(context.Background(), eventbus.EntityChanged{EventName: constants.EventProjectChanged}))
		time.Sleep(10 * time.Millisecond)
	}
	_, warm := cache.counts()
	assert.GreaterOrEqual(t, warm, 2)
}
