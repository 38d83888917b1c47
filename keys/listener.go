package keys

import (
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

// Listener watches for the configured stop key through a process-wide
// input hook and invokes onStop once when it is pressed. The hook is
// global state, so acquisition is scoped to a playback session: callers
// must Close on every exit path.
type Listener struct {
	done chan struct{}
	once sync.Once
}

func NewListener(stopKey string, onStop func()) *Listener {
	l := &Listener{done: make(chan struct{})}

	var fired sync.Once
	hook.Register(hook.KeyDown, []string{strings.ToLower(stopKey)}, func(e hook.Event) {
		fired.Do(onStop)
	})

	events := hook.Start()
	go func() {
		<-hook.Process(events)
		close(l.done)
	}()
	return l
}

// Close unregisters the global hook. Safe to call more than once.
func (l *Listener) Close() {
	l.once.Do(func() {
		hook.End()
		<-l.done
	})
}
