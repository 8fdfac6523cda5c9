package systems

import (
	"bytes"
	"testing"

	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestEventQueueDrains(t *testing.T) {
	q := &EventQueue{}
	q.Emit(Event{Kind: cfg.EventCoin, Amount: 25})
	q.Emit(Event{Kind: cfg.EventJump})

	assert.Equal(t, 2, q.Len())
	events := q.Drain()
	assert.Equal(t, []Event{{Kind: cfg.EventCoin, Amount: 25}, {Kind: cfg.EventJump}}, events)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestTeeFansOut(t *testing.T) {
	a, b := &EventQueue{}, &EventQueue{}
	var seen []cfg.EventKind
	sink := Tee(a, b, EventFunc(func(e Event) { seen = append(seen, e.Kind) }))

	sink.Emit(Event{Kind: cfg.EventStomp})
	Discard.Emit(Event{Kind: cfg.EventStomp})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []cfg.EventKind{cfg.EventStomp}, seen)
}

func TestLogSinkFollowsDebugFlag(t *testing.T) {
	defer cfg.Defaults()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sink := LogSink(logger)

	sink.Emit(Event{Kind: cfg.EventCoin})
	assert.Empty(t, buf.String())

	cfg.Debug.LogEvents = true
	sink.Emit(Event{Kind: cfg.EventCoin, Amount: 25})
	assert.Contains(t, buf.String(), "coin")
}

func TestWorldReportsEventsToItsSink(t *testing.T) {
	var kinds []cfg.EventKind
	sink := EventFunc(func(e Event) { kinds = append(kinds, e.Kind) })

	l := flatLevel(40)
	setTile(l, 3, 13, '$')
	s := session.New()
	w, err := NewWorld(l, s, sink)
	assert.NoError(t, err)

	for i := 0; i < 40; i++ {
		w.Step(s, Hold(cfg.ActionMoveRight), 1)
	}
	assert.Contains(t, kinds, cfg.EventCoin)
}
