package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/desmidi/artifact"
	"github.com/jsphweid/desmidi/collapse"
	"github.com/jsphweid/desmidi/midi"
	"github.com/jsphweid/desmidi/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <midi-file>",
	Short: "Exports a MIDI file as a song folder",
	Long:  `Exports a MIDI file's note-set checkpoints and formulas into a folder named after the file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fatal("Usage: desmidi export <midi-file>")
		}
		export(args[0])
	},
}

// song folder named after the midi file, sans extension
func songFolder(midiPath string) string {
	base := filepath.Base(midiPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func export(midiPath string) {
	if !util.PathExists(midiPath) {
		fatal("Error: file %v not found", midiPath)
	}

	parsed, err := midi.ReadMidiFile(midiPath)
	if err != nil {
		fatal("Error: %v", err)
	}

	checkpoints := collapse.Collapse(midi.ExtractEvents(parsed))

	folder := songFolder(midiPath)
	if err := artifact.WriteAll(folder, checkpoints); err != nil {
		fatal("Error: %v", err)
	}
	fmt.Printf("Exported %v checkpoints to %v/\n", len(checkpoints), folder)
}
