// floe is a tile platformer: a tile-grid collision and actor physics core
// with an ebiten front end and a headless simulator.
//
// Usage:
//
//	floe play [level]      - Play from a level (name or 1-based number)
//	floe sim [level]       - Run a level headless with scripted input
//	floe levels            - Validate and list levels
//	floe scores            - Show high scores
//
// Global flags:
//
//	--db <path>       - Score database (default: ~/.floe/scores.db)
//	--tuning <path>   - YAML tuning overrides
//	--levels <dir>    - Load levels from a directory instead of the bundled set
//	--debug           - Debug logging
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/floe/assets"
	"github.com/automoto/floe/config"
	"github.com/automoto/floe/fonts"
	"github.com/automoto/floe/scenes"
	"github.com/automoto/floe/shared/leveldata"
	"github.com/automoto/floe/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath    string
	flagTuning    string
	flagLevelsDir string
	flagDebug     bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floe",
	Short: "Floe - a tile platformer",
	Long: `Floe is a tile platformer with a deterministic physics core.

Available commands:
  play     - Play in a window
  sim      - Run levels headless with scripted input
  levels   - Validate and list levels
  scores   - View high scores

Examples:
  floe play
  floe play 2
  floe sim level1 --frames 3000 --script "right*200,right+jump*40,right"
  floe levels --levels ./mylevels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "YAML tuning overrides")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level directory (default: bundled levels)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup installs the logger and applies tuning overrides before any command.
func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "floe",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	path, err := config.LoadOverrides(flagTuning)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("tuning applied", "path", path)
	}
	return nil
}

// loadLevels reads --levels when given, otherwise the bundled set.
func loadLevels() ([]*leveldata.Level, error) {
	if flagLevelsDir == "" {
		return assets.LoadLevels()
	}
	levels, err := leveldata.LoadAll(os.DirFS(flagLevelsDir), ".")
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", flagLevelsDir, err)
	}
	return levels, nil
}

// pickLevel resolves an optional level argument to an index.
func pickLevel(levels []*leveldata.Level, args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	_, index, ok := leveldata.Find(levels, args[0])
	if !ok {
		return 0, fmt.Errorf("unknown level %q (run 'floe levels' to list them)", args[0])
	}
	return index, nil
}

func newGame(opts scenes.Options, resume bool) *Game {
	fonts.LoadDefaults()
	g := &Game{}
	g.scene = scenes.NewPlatformerScene(g, opts, nil)
	if resume {
		if s, err := loadSaved(opts.Levels); err == nil && s != nil {
			log.Info("resuming", "level", s.LevelName, "score", s.Score, "lives", s.Lives)
			g.scene = scenes.NewPlatformerScene(g, opts, s)
		}
	}
	return g
}
