package main

import (
	"os"

	"github.com/automoto/floe/config"
	"github.com/automoto/floe/scenes"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/leveldata"
	"github.com/automoto/floe/storage"
	"github.com/automoto/floe/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagName  string
	flagFresh bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in a window",
	Long: `Open a window and play from the given level (name or 1-based number).
Without a level the saved session is resumed, if there is one.

Controls:
  Arrows/WASD   - Move, up, duck
  Space/X       - Jump
  Ctrl/Z        - Run, fire, grab shells

Examples:
  floe play
  floe play level2
  floe play 3 --name alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", defaultName(), "Name recorded with high scores")
	playCmd.Flags().BoolVar(&flagFresh, "new", false, "Ignore the saved session")
}

func runPlay(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	start, err := pickLevel(levels, args)
	if err != nil {
		return err
	}

	if err := systems.InitPersistence("floe"); err != nil {
		log.Warn("playing without a save slot", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("playing without high scores", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := scenes.Options{
		Levels: levels,
		Start:  start,
		Scores: store,
		Name:   flagName,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("floe")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(newGame(opts, len(args) == 0 && !flagFresh))
}

// loadSaved returns the saved session when it still points at a known level.
func loadSaved(levels []*leveldata.Level) (*session.State, error) {
	s, err := systems.LoadSession()
	if err != nil || s == nil {
		return nil, err
	}
	if l, index, ok := leveldata.Find(levels, s.LevelName); ok {
		s.AdvanceLevel(index, l.Name)
		return s, nil
	}
	log.Warn("saved session refers to a missing level", "level", s.LevelName)
	return nil, nil
}

func defaultName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
