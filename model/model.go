package model

type Notes = []int

type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

// NoteEvent is one decoded on/off event, offset in absolute milliseconds
// from the start of the song. The decoder guarantees ascending offsets and
// stable order for equal offsets; velocity-zero note-ons arrive as NoteOff.
type NoteEvent struct {
	OffsetMS int64
	Kind     EventKind
	Pitch    int
}

// Checkpoint is the set of sounding pitches at one moment the set changed.
// Notes is always sorted ascending with no duplicates and never nil.
type Checkpoint struct {
	OffsetMS int64
	Notes    Notes
}

type Summary struct {
	NumCheckpoints int
	DurationMS     int64
	LowPitch       int
	HighPitch      int
}
