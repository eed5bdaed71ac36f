package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

// Dispatch never blocks a request: when the queue is full the event is
// dropped rather than stalling the API.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
