package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	Keyboard KeyboardConfig `toml:"keyboard"`
	Timing   TimingConfig   `toml:"timing"`
}

type KeyboardConfig struct {
	StopKey       string   `toml:"stop_key"`
	StartSequence []string `toml:"start_sequence"`
	NextSequence  []string `toml:"next_sequence"`
}

type TimingConfig struct {
	// seconds before the first action fires
	InitialDelay float64 `toml:"initial_delay"`
	// fixed settle delay per step, NOT drift-corrected
	NoteDelayMS int64 `toml:"note_delay_ms"`
}

func Default() Config {
	return Config{
		Keyboard: KeyboardConfig{
			StopKey:       "esc",
			StartSequence: []string{"enter"},
			NextSequence:  []string{"right"},
		},
		Timing: TimingConfig{
			InitialDelay: 3,
			NoteDelayMS:  0,
		},
	}
}

// Load reads a config file on top of the defaults. A missing or unreadable
// file is an error: playing with key bindings the user never saw is worse
// than refusing to start.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading config %v", path)
	}
	return cfg, nil
}
