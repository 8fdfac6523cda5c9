package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/fonts"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const topScoresShown = 5

// GameOverScene displays the final score and the high-score table
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         Options
	session      *session.State
	won          bool
	top          []storage.ScoreEntry
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, opts Options, s *session.State, won bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, session: s, won: won}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		opts := gs.opts
		opts.Start = 0
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, opts, nil))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	cx := cfg.Screen.Width / 2
	title := "GAME OVER"
	if gs.won {
		title = "YOU WIN"
	}
	drawCentered(screen, title, fonts.Title, cx, 80, 4, cfg.Yellow)
	drawCentered(screen, fmt.Sprintf("SCORE %d   COINS %d", gs.session.Score, gs.session.Coins), fonts.HUD, cx, 160, 1, cfg.White)

	y := 210.0
	for i, e := range gs.top {
		line := fmt.Sprintf("%d. %-10s %8d  %s", i+1, e.Name, e.Score, e.Level)
		drawCentered(screen, line, fonts.HUD, cx, y, 1, cfg.LightBlue)
		y += 18
	}
	drawCentered(screen, "PRESS ENTER TO PLAY AGAIN", fonts.HUD, cx, cfg.Screen.Height-60, 1, cfg.White)
}

func (gs *GameOverScene) configure() {
	if gs.opts.Scores == nil {
		return
	}
	top, err := gs.opts.Scores.TopScores(topScoresShown)
	if err != nil {
		log.Warn("could not read high scores", "err", err)
		return
	}
	gs.top = top
}
