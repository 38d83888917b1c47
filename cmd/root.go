package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "desmidi",
	Short: "MIDI to calculator formulas, and back out as keystrokes",
	Long:  `Exports MIDI files as note-set checkpoints plus calculator formulas, and plays exported songs by sending timed keystrokes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
