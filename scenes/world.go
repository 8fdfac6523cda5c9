package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/floe/assets"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/leveldata"
	"github.com/automoto/floe/storage"
	"github.com/automoto/floe/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures a run of the game.
type Options struct {
	Levels []*leveldata.Level
	Start  int
	Scores *storage.Store // nil disables the high-score table
	Name   string         // recorded with high scores
}

// bannerTicks is how long a banner stays on screen.
const bannerTicks = 90

type PlatformerScene struct {
	sceneChanger SceneChanger
	opts         Options
	session      *session.State
	world        *systems.World
	events       *systems.EventQueue
	banner       string
	bannerLeft   int
	once         sync.Once
}

// NewPlatformerScene starts a run at opts.Start. A nil session starts a new game.
func NewPlatformerScene(sc SceneChanger, opts Options, s *session.State) *PlatformerScene {
	if s == nil {
		s = session.New()
		s.LevelIndex = opts.Start
	}
	return &PlatformerScene{sceneChanger: sc, opts: opts, session: s}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.world == nil {
		return
	}

	outcome := ps.world.Step(ps.session, ReadInput(), FrameRatio())
	ps.handleEvents()
	if ps.bannerLeft > 0 {
		ps.bannerLeft--
	}

	switch outcome {
	case systems.OutcomeFinished:
		ps.nextLevel()
	case systems.OutcomeLost:
		log.Info("life lost", "level", ps.session.LevelName, "lives", ps.session.Lives)
		ps.world.Reset(ps.session)
	case systems.OutcomeGameOver:
		ps.finish(false)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.world == nil {
		screen.Fill(color.Black)
		return
	}
	bg := ps.world.Level().Background
	screen.Fill(color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255})

	DrawLevel(screen, ps.world, ps.session)
	DrawEntities(screen, ps.world, ps.session)

	banner := ""
	if ps.bannerLeft > 0 {
		banner = ps.banner
	}
	DrawHUD(screen, ps.world, ps.session, banner)
}

func (ps *PlatformerScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn("tint shader unavailable", "err", err)
	}
	ps.events = &systems.EventQueue{}
	ps.loadLevel(ps.session.LevelIndex)
}

func (ps *PlatformerScene) loadLevel(index int) {
	if index < 0 || index >= len(ps.opts.Levels) {
		index = 0
	}
	level := ps.opts.Levels[index]
	ps.session.AdvanceLevel(index, level.Name)

	world, err := systems.NewWorld(level, ps.session, systems.Tee(ps.events, systems.LogSink(log.Default())))
	if err != nil {
		log.Error("could not start level", "level", level.Name, "err", err)
		ps.finish(false)
		return
	}
	ps.world = world
	ps.show(level.Title)
	log.Info("level started", "level", level.Name, "index", index)
}

func (ps *PlatformerScene) show(banner string) {
	ps.banner = banner
	ps.bannerLeft = bannerTicks
}

func (ps *PlatformerScene) handleEvents() {
	for _, e := range ps.events.Drain() {
		switch e.Kind {
		case cfg.EventLifeUp:
			ps.show("1UP")
		case cfg.EventLevelFinished:
			ps.show("LEVEL CLEAR")
		}
	}
}

// nextLevel saves the session and moves on, or ends the run after the last level.
func (ps *PlatformerScene) nextLevel() {
	next := ps.session.LevelIndex + 1
	if next >= len(ps.opts.Levels) {
		ps.finish(true)
		return
	}
	ps.session.AdvanceLevel(next, ps.opts.Levels[next].Name)
	if err := systems.SaveSession(ps.session); err != nil {
		log.Warn("session not saved", "err", err)
	}
	ps.loadLevel(next)
}

// finish records the score and shows the end screen.
func (ps *PlatformerScene) finish(won bool) {
	if ps.opts.Scores != nil {
		_, err := ps.opts.Scores.SaveScore(storage.ScoreEntry{
			Name:  ps.opts.Name,
			Score: ps.session.Score,
			Coins: ps.session.Coins,
			Level: ps.session.LevelName,
		})
		if err != nil {
			log.Warn("score not saved", "err", err)
		}
	}
	if err := systems.ClearSession(); err != nil {
		log.Warn("session not cleared", "err", err)
	}
	ps.world = nil
	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.opts, ps.session, won))
}
