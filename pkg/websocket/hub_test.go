package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	client := &Client{Hub: hub, Send: make(chan []byte, 1), UserID: 7}
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Broadcast(RefreshPayload{Reason: "project.changed", Action: "update"}, "dashboard.refresh"))

	select {
	case msg := <-client.Send:
		var env Envelope
		require.NoError(t, json.Unmarshal(msg, &env))
		assert.Equal(t, "dashboard.refresh", env.Type)
	case <-time.After(time.Second):
		t.Fatal("сообщение не доставлено")
	}
}

func TestHub_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zap.NewNop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	cancel()
	<-stopped

	// после остановки Broadcast не блокируется
	assert.NoError(t, hub.Broadcast(RefreshPayload{}, "dashboard.refresh"))
}
