package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jsphweid/desmidi/artifact"
	"github.com/jsphweid/desmidi/collapse"
	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <song-folder>",
	Short: "Inspects an exported song",
	Long:  `Inspects an exported song folder and prints its overview`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fatal("Usage: desmidi inspect <song-folder>")
		}
		inspect(args[0])
	},
}

func countFormulas(folder string) (int, bool) {
	data, err := os.ReadFile(filepath.Join(folder, constants.FormulasFilename))
	if err != nil {
		return 0, false
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return 0, true
	}
	return len(strings.Split(text, "\n")), true
}

func inspect(folder string) {
	checkpoints, err := artifact.ReadSong(folder)
	if err != nil {
		fatal("Error: %v", err)
	}

	s := collapse.Summarize(checkpoints)
	fmt.Printf("checkpoints: %v\n", s.NumCheckpoints)
	fmt.Printf("duration: %v\n", util.FormatTime(time.Duration(s.DurationMS)*time.Millisecond))
	if s.NumCheckpoints > 0 {
		fmt.Printf("pitch range: %v-%v\n", s.LowPitch, s.HighPitch)
	}

	if numFormulas, ok := countFormulas(folder); ok {
		fmt.Printf("formulas: %v", numFormulas)
		if numFormulas != s.NumCheckpoints {
			fmt.Printf(" (out of sync with %v!)", constants.DataFilename)
		}
		fmt.Println()
	}
}
