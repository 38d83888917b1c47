package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/desmidi/artifact"
	"github.com/jsphweid/desmidi/config"
	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/keys"
	"github.com/jsphweid/desmidi/playback"
	"github.com/jsphweid/desmidi/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <song-folder>",
	Short: "Plays an exported song",
	Long:  `Plays an exported song folder by sending the configured key sequences in time`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fatal("Usage: desmidi play <song-folder>")
		}
		play(args[0])
	},
}

// progressPrinter rewrites the progress line in place, coalescing bursts
// of simultaneous checkpoint transitions into one terminal write.
type progressPrinter struct {
	mu       sync.Mutex
	debounce func(func())
	elapsed  time.Duration
	total    time.Duration
	done     bool
}

func newProgressPrinter() *progressPrinter {
	return &progressPrinter{debounce: debounce.New(50 * time.Millisecond)}
}

func (p *progressPrinter) report(elapsed, total time.Duration) {
	p.mu.Lock()
	p.elapsed = elapsed
	p.total = total
	p.mu.Unlock()
	p.debounce(p.print)
}

func (p *progressPrinter) print() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}
	fmt.Printf("\rProgress: %v / %v", util.FormatTime(p.elapsed), util.FormatTime(p.total))
}

// finish writes the 100% line and silences any still-pending debounced
// update so nothing overwrites it.
func (p *progressPrinter) finish(total time.Duration) {
	p.mu.Lock()
	p.done = true
	p.mu.Unlock()
	fmt.Printf("\rProgress: %v / %v\n", util.FormatTime(total), util.FormatTime(total))
}

func play(folder string) {
	if !util.PathExists(folder) {
		fatal("Error: folder %v not found", folder)
	}

	cfg, err := config.Load(constants.ConfigFilename)
	if err != nil {
		fatal("Error: %v", err)
	}

	checkpoints, err := artifact.ReadSong(folder)
	if err != nil {
		fatal("Error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer logger.Sync()

	sender, err := keys.NewSender(cfg.Keyboard)
	if err != nil {
		fatal("Error: %v", err)
	}

	var total time.Duration
	if len(checkpoints) > 0 {
		total = time.Duration(checkpoints[len(checkpoints)-1].OffsetMS) * time.Millisecond
	}
	fmt.Printf("Playing %v in %v seconds...\n", folder, cfg.Timing.InitialDelay)
	fmt.Printf("Press '%v' to stop playback\n", cfg.Keyboard.StopKey)
	fmt.Printf("Total duration: %v\n", util.FormatTime(total))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the stop-key hook is process-global, so it lives exactly as long
	// as this session
	listener := keys.NewListener(cfg.Keyboard.StopKey, cancel)
	defer listener.Close()

	printer := newProgressPrinter()
	err = playback.Play(ctx, checkpoints, sender, playback.Options{
		InitialDelay: time.Duration(cfg.Timing.InitialDelay * float64(time.Second)),
		NoteDelay:    time.Duration(cfg.Timing.NoteDelayMS) * time.Millisecond,
		OnProgress:   printer.report,
		Logger:       logger,
	})

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\nPlayback stopped")
	case err != nil:
		listener.Close()
		fatal("\nError: %v", err)
	default:
		printer.finish(total)
	}
}
