package services

import (
	"go.uber.org/zap"

	"project-dashboard/pkg/eventbus"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionPin    = "pin"
	ActionImport = "import"
)

// EventPublisher - то, что сервисам нужно от шины событий.
type EventPublisher interface {
	Publish(event eventbus.Event)
}

// BaseService - общее для CRUD-сервисов: логгер и публикация изменений.
type BaseService struct {
	bus    EventPublisher
	logger *zap.Logger
}

func NewBaseService(bus EventPublisher, logger *zap.Logger) *BaseService {
	return &BaseService{bus: bus, logger: logger}
}

func (s *BaseService) publishChange(eventName, action string, entityID int64, count int) {
	if s.bus == nil {
		return
	}
	s.logger.Debug("Публикация события",
		zap.String("event", eventName),
		zap.String("action", action),
		zap.Int64("entityID", entityID),
	)
	s.bus.Publish(eventbus.EntityChanged{EventName: eventName, Action: action, EntityID: entityID, Count: count})
}
