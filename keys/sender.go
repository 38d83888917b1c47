package keys

import (
	"runtime"
	"time"

	"github.com/jsphweid/desmidi/config"
	"github.com/micmonay/keybd_event"
	"github.com/pkg/errors"
)

// Sender fires the configured key sequences through the OS-level
// synthetic-keystroke facility. It implements playback.Actuator.
type Sender struct {
	kb    keybd_event.KeyBonding
	start []int
	next  []int
}

func NewSender(cfg config.KeyboardConfig) (*Sender, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, errors.Wrap(err, "opening keystroke device")
	}
	// on linux the uinput device needs a moment before keys register
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}

	start, err := resolveSequence(cfg.StartSequence)
	if err != nil {
		return nil, errors.Wrap(err, "start_sequence")
	}
	next, err := resolveSequence(cfg.NextSequence)
	if err != nil {
		return nil, errors.Wrap(err, "next_sequence")
	}

	return &Sender{kb: kb, start: start, next: next}, nil
}

func (s *Sender) Start() error {
	return s.send(s.start)
}

func (s *Sender) Advance() error {
	return s.send(s.next)
}

func (s *Sender) send(codes []int) error {
	for _, code := range codes {
		s.kb.SetKeys(code)
		if err := s.kb.Launching(); err != nil {
			return errors.Wrap(err, "sending keystroke")
		}
	}
	return nil
}

func resolveSequence(names []string) ([]int, error) {
	var res []int
	for _, name := range names {
		code, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		res = append(res, code)
	}
	return res, nil
}
