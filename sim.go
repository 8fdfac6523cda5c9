package main

import (
	"fmt"
	"os"

	"github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/systems"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagScript string
	flagQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run levels headless with scripted input",
	Long: `Run the game without a window, one nominal frame per step, feeding a
scripted input sequence. Prints every game event and the final session.

A script is a comma separated list of steps. A step is actions joined by
'+' with an optional '*frames' count; the last step repeats.
Actions: left, right, up, down (duck), jump, fire (run), none.

Examples:
  floe sim --script "right+fire"
  floe sim level2 --frames 5000 --script "right*300,right+jump*60,right"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 6000, "Frames to run")
	simCmd.Flags().StringVar(&flagScript, "script", "right", "Input script")
	simCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the result")
}

func runSim(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	start, err := pickLevel(levels, args)
	if err != nil {
		return err
	}
	script, err := systems.ParseScript(flagScript)
	if err != nil {
		return err
	}

	s := session.New()
	s.LevelIndex = start

	sink := systems.Discard
	if !flagQuiet {
		out := cmd.OutOrStdout()
		sink = systems.EventFunc(func(e systems.Event) {
			fmt.Fprintf(out, "%-16s x=%-7.1f y=%-7.1f %d\n", e.Kind, e.X, e.Y, e.Amount)
		})
	}
	if config.Debug.LogEvents {
		sink = systems.Tee(sink, systems.LogSink(log.Default()))
	}

	res, err := systems.Simulate(levels, s, script, flagFrames, 1, sink)
	if err != nil {
		return err
	}

	log.Info("simulation done", "frames", res.Frames, "outcome", res.Outcome)
	printSession(cmd, res, s)
	if res.Outcome == systems.OutcomeGameOver {
		os.Exit(2)
	}
	return nil
}

func printSession(cmd *cobra.Command, res systems.SimResult, s *session.State) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-10s %s\n", "Outcome", res.Outcome)
	fmt.Fprintf(out, "  %-10s %d\n", "Frames", res.Frames)
	fmt.Fprintf(out, "  %-10s %s\n", "Level", res.Level)
	fmt.Fprintf(out, "  %-10s %d\n", "Attempts", res.Attempts)
	fmt.Fprintf(out, "  %-10s %d\n", "Score", s.Score)
	fmt.Fprintf(out, "  %-10s %d\n", "Coins", s.Coins)
	fmt.Fprintf(out, "  %-10s %d\n", "Lives", s.Lives)
	fmt.Fprintf(out, "  %-10s %s\n", "Size", s.Size)
	fmt.Fprintf(out, "  %-10s %t\n", "Coffee", s.GotCoffee)
}
