package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/gametime"
	"github.com/automoto/floe/shared/leveldata"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Outcome is what a frame meant for the level attempt.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeFinished
	OutcomeLost
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "finished"
	case OutcomeLost:
		return "lost"
	case OutcomeGameOver:
		return "game-over"
	}
	return "running"
}

// Input is one frame of held actions.
type Input [cfg.ActionCount]bool

// Hold returns an Input with the given actions pressed.
func Hold(actions ...cfg.ActionID) Input {
	var in Input
	for _, a := range actions {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			in[a] = true
		}
	}
	return in
}

// System is one step of the frame pipeline.
type System func(w *World, s *session.State, dt float64)

// frameSystems run in this order every frame: intent and integration per
// entity kind (each resolves against the grid itself), broadphase sync,
// pair dispatch, then removal and camera.
var frameSystems = []System{
	UpdateInput,
	UpdateTimeLimit,
	UpdatePlayer,
	UpdateBadGuys,
	UpdateBullets,
	UpdateUpgrades,
	UpdateDecorations,
	UpdateObjects,
	DispatchCollisions,
	RemoveDead,
	UpdateCamera,
}

// World is the entity registry of one level attempt. It owns every dynamic
// entity, the tile grid and the clock, and drives the frame.
//
// Entry pointers obtained during a frame are valid until the removal pass at
// the end of Step; do not keep them across frames without checking Valid.
type World struct {
	level    *leveldata.Level
	grid     *tilegrid.Grid
	entities donburi.World
	space    *resolv.Space
	clock    *gametime.Clock
	events   EventSink

	player     *donburi.Entry
	input      Input
	endX       float64
	timeLeft   float64 // ms
	coinBricks map[[2]int]int
	outcome    Outcome
}

// NewWorld builds the registry for a level and spawns its entities. On error
// nothing is returned; the world is never half built.
func NewWorld(level *leveldata.Level, s *session.State, sink EventSink) (*World, error) {
	if level == nil {
		return nil, errors.New("new world: no level")
	}
	if len(level.Rows) != tilegrid.Rows || level.Width <= cfg.Level.EndTiles {
		return nil, fmt.Errorf("new world %s: %w", level.Name, leveldata.ErrMalformed)
	}
	for _, spawn := range level.BadGuys {
		if _, ok := cfg.ParseBadGuyKind(spawn.Kind); !ok {
			return nil, fmt.Errorf("new world %s: bad guy kind %q: %w", level.Name, spawn.Kind, leveldata.ErrMalformed)
		}
	}
	if sink == nil {
		sink = Discard
	}

	w := &World{level: level, events: sink}
	w.Reset(s)
	return w, nil
}

// Reset discards every entity and restores the pristine level. The player's
// size and power come from the session.
func (w *World) Reset(s *session.State) {
	w.grid = w.level.Grid()
	w.entities = donburi.NewWorld()
	w.space = factory.CreateSpace(w.grid.PixelWidth(), w.grid.PixelHeight())
	w.clock = gametime.NewClock(cfg.Screen.FrameMS)
	w.coinBricks = map[[2]int]int{}
	w.endX = w.level.EndX(cfg.Level.EndTiles)
	w.timeLeft = float64(w.level.Time) * 1000
	w.input = Input{}
	w.outcome = OutcomeRunning

	if s != nil {
		s.ScrollX = 0
		s.ResetMultiplier()
	}
	size := cfg.SizeSmall
	if s != nil {
		size = s.Size
	}
	w.player = factory.CreatePlayer(w, w.level.Start.X, w.level.Start.Y, size)

	for _, spawn := range w.level.BadGuys {
		kind, _ := cfg.ParseBadGuyKind(spawn.Kind)
		factory.CreateBadGuy(w, kind, spawn.X, spawn.Y)
	}
}

// Step runs one frame. dt is the frame ratio; frames with dt <= 0, NaN or
// infinite dt do nothing. Once the attempt has ended every later call returns
// the same outcome.
func (w *World) Step(s *session.State, in Input, dt float64) Outcome {
	if w.outcome != OutcomeRunning || !(dt > 0) || math.IsInf(dt, 1) {
		return w.outcome
	}
	w.clock.Advance(dt)
	w.input = in
	for _, system := range frameSystems {
		system(w, s, dt)
	}
	w.outcome = w.checkOutcome(s)
	return w.outcome
}

func (w *World) checkOutcome(s *session.State) Outcome {
	p := components.Player.Get(w.player)
	obj := components.Object.Get(w.player)

	if p.Dying != cfg.DyingNot {
		if obj.Box.Y < w.grid.PixelHeight() {
			return OutcomeRunning
		}
		if s.GameOver() {
			return OutcomeGameOver
		}
		return OutcomeLost
	}
	if obj.Box.X >= w.endX {
		w.emit(cfg.EventLevelFinished, obj.Box.X, obj.Box.Y, 0)
		return OutcomeFinished
	}
	return OutcomeRunning
}

// Entities implements factory.Env.
func (w *World) Entities() donburi.World { return w.entities }

// Space implements factory.Env.
func (w *World) Space() *resolv.Space { return w.space }

// Clock implements factory.Env.
func (w *World) Clock() *gametime.Clock { return w.clock }

func (w *World) Grid() *tilegrid.Grid       { return w.grid }
func (w *World) Level() *leveldata.Level    { return w.level }
func (w *World) Player() *donburi.Entry     { return w.player }
func (w *World) Outcome() Outcome           { return w.outcome }
func (w *World) EndX() float64              { return w.endX }
func (w *World) SetEvents(sink EventSink)   { w.events = sink }
func (w *World) TimeLeft() float64          { return max(w.timeLeft, 0) }

// Valid reports whether a handle still refers to a live entity.
func (w *World) Valid(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !components.Object.Get(e).Removed
}

// Count returns the live entities carrying component c.
func Count[T any](w *World, c *donburi.ComponentType[T]) int {
	return len(liveEntries(w, c))
}

// liveEntries snapshots the entities with component c that are not marked for
// removal, in storage order.
func liveEntries[T any](w *World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(w.entities, func(e *donburi.Entry) {
		if !components.Object.Get(e).Removed {
			out = append(out, e)
		}
	})
	return out
}

func sameEntity(a, b *donburi.Entry) bool {
	return a != nil && b != nil && a.Entity() == b.Entity()
}

// remove marks an entity for the end-of-frame removal pass.
func (w *World) remove(e *donburi.Entry) {
	components.Object.Get(e).Removed = true
}

func (w *World) emit(kind cfg.EventKind, x, y float64, amount int) {
	w.events.Emit(Event{Kind: kind, X: x, Y: y, Amount: amount})
}
