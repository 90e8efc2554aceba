package websocket

import "time"

// Envelope - "конверт" сообщения: тип подсказывает фронтенду, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// RefreshPayload - сигнал фронтенду перезапросить дашборд.
type RefreshPayload struct {
	Reason   string `json:"reason"`
	Action   string `json:"action"`
	EntityID int64  `json:"entityId,omitempty"`
	Count    int    `json:"count,omitempty"`
}
