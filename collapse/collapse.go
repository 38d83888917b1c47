package collapse

import (
	"sort"

	"github.com/jsphweid/desmidi/model"
	"github.com/jsphweid/desmidi/util"
)

func snapshot(active map[int]bool) model.Notes {
	// always non-nil so an empty set serializes as [] and not null
	notes := make(model.Notes, 0, len(active))
	for note := range active {
		notes = append(notes, note)
	}
	sort.Ints(notes)
	return notes
}

// Collapse folds an ordered stream of note events into checkpoints: one
// entry per distinct offset at which the sounding set actually changed,
// offsets strictly increasing. Two events at the same offset collapse into
// a single checkpoint holding the set after both applied. Turning a note
// off that was never on is a no-op and produces no checkpoint.
func Collapse(events []model.NoteEvent) []model.Checkpoint {
	active := make(map[int]bool)
	changes := make(map[int64]model.Notes)

	for _, evt := range events {
		switch evt.Kind {
		case model.NoteOn:
			active[evt.Pitch] = true
			changes[evt.OffsetMS] = snapshot(active)
		case model.NoteOff:
			if active[evt.Pitch] {
				delete(active, evt.Pitch)
				changes[evt.OffsetMS] = snapshot(active)
			}
		}
	}

	var res []model.Checkpoint
	for _, offset := range util.SortedKeys(changes) {
		res = append(res, model.Checkpoint{OffsetMS: offset, Notes: changes[offset]})
	}
	return res
}

// Summarize computes the overview stats shown by inspect and serve.
func Summarize(checkpoints []model.Checkpoint) model.Summary {
	var s model.Summary
	s.NumCheckpoints = len(checkpoints)
	if len(checkpoints) == 0 {
		return s
	}
	s.DurationMS = checkpoints[len(checkpoints)-1].OffsetMS

	first := true
	for _, cp := range checkpoints {
		for _, note := range cp.Notes {
			if first || note < s.LowPitch {
				s.LowPitch = note
			}
			if first || note > s.HighPitch {
				s.HighPitch = note
			}
			first = false
		}
	}
	return s
}
