package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/desmidi/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// ExtractEvents flattens every track into a single ordered stream of
// note events with absolute millisecond offsets. Tick deltas are summed
// as integers and converted to wall time once per event, so repeated
// fractional addition never drifts the offsets.
func ExtractEvents(s *smf.SMF) []model.NoteEvent {
	var res []model.NoteEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			// TimeAt returns microseconds
			offsetMS := s.TimeAt(absTicks) / 1000
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				kind := model.NoteOn
				if velocity == 0 {
					// velocity-zero note-on is a note-off by convention
					kind = model.NoteOff
				}
				res = append(res, model.NoteEvent{
					OffsetMS: offsetMS,
					Kind:     kind,
					Pitch:    int(key),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, model.NoteEvent{
					OffsetMS: offsetMS,
					Kind:     model.NoteOff,
					Pitch:    int(key),
				})
			}
		}
	}

	// merge tracks; stable so simultaneous events keep their track order
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].OffsetMS < res[j].OffsetMS
	})
	return res
}
