package notify

import "log"

type Dispatcher struct {
	creator *Creator
	queue   chan Event
}

func NewDispatcher(creator *Creator) *Dispatcher {
	d := &Dispatcher{
		creator: creator,
		queue:   make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.creator.Create(ev); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Notify(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// cola llena → descartamos la notificación (nunca romper el API)
		log.Println("notification queue full, dropping event")
	}
}

var _ Emitter = (*Dispatcher)(nil)
