package systems

import (
	cfg "github.com/automoto/floe/config"
	"github.com/charmbracelet/log"
)

// Event is one scoring/sound event reported by the core.
type Event struct {
	Kind   cfg.EventKind
	X, Y   float64
	Amount int // points, coins, or 0
}

// EventSink receives events as they happen during a frame. Implementations
// must not call back into the world.
type EventSink interface {
	Emit(Event)
}

// EventFunc adapts a function to EventSink.
type EventFunc func(Event)

func (f EventFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard EventSink = EventFunc(func(Event) {})

// EventQueue buffers events until drained. The ebiten scene and the headless
// simulator drain it once per frame.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int { return len(q.events) }

// Tee sends every event to all sinks in order.
func Tee(sinks ...EventSink) EventSink {
	return EventFunc(func(e Event) {
		for _, s := range sinks {
			s.Emit(e)
		}
	})
}

// LogSink writes events at debug level when cfg.Debug.LogEvents is set.
func LogSink(logger *log.Logger) EventSink {
	return EventFunc(func(e Event) {
		if !cfg.Debug.LogEvents {
			return
		}
		logger.Debug("event", "kind", e.Kind, "x", e.X, "y", e.Y, "amount", e.Amount)
	})
}
