package eventbus

// EntityChanged - событие изменения данных, влияющих на дашборд.
type EntityChanged struct {
	EventName string
	Action    string // create | update | delete | import
	EntityID  int64
	Count     int
}

func (e EntityChanged) Name() string { return e.EventName }
