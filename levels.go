package main

import (
	"fmt"

	"github.com/automoto/floe/session"
	"github.com/automoto/floe/systems"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate and list levels",
	Long: `Load every level, build a world for each and list them.
Fails on the first level that cannot be built.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-5s  %-4s  %-7s  %s\n", "#", maxNameLen, "Name", "Width", "Time", "BadGuys", "Title")
	fmt.Fprintf(out, "  %-3s  %-*s  %-5s  %-4s  %-7s  %s\n", "-", maxNameLen, "----", "-----", "----", "-------", "-----")
	for i, l := range levels {
		if _, err := systems.NewWorld(l, session.New(), systems.Discard); err != nil {
			return fmt.Errorf("level %s: %w", l.Name, err)
		}
		fmt.Fprintf(out, "  %-3d  %-*s  %-5d  %-4d  %-7d  %s\n", i+1, maxNameLen, l.Name, l.Width, l.Time, len(l.BadGuys), l.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d levels OK. Run 'floe play <name|#>' to play one.\n", len(levels))
	return nil
}
