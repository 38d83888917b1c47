package collapse

import (
	"testing"

	"github.com/jsphweid/desmidi/model"
	"github.com/stretchr/testify/assert"
)

func on(offset int64, pitch int) model.NoteEvent {
	return model.NoteEvent{OffsetMS: offset, Kind: model.NoteOn, Pitch: pitch}
}

func off(offset int64, pitch int) model.NoteEvent {
	return model.NoteEvent{OffsetMS: offset, Kind: model.NoteOff, Pitch: pitch}
}

func TestEmptyStreamYieldsNoCheckpoints(t *testing.T) {
	assert.Empty(t, Collapse(nil))
	assert.Empty(t, Collapse([]model.NoteEvent{}))
}

func TestBasicOnOffSequence(t *testing.T) {
	events := []model.NoteEvent{
		on(0, 60),
		on(500, 64),
		off(500, 60),
		off(1000, 64),
	}

	assert := assert.New(t)
	assert.Equal([]model.Checkpoint{
		{OffsetMS: 0, Notes: model.Notes{60}},
		{OffsetMS: 500, Notes: model.Notes{64}},
		{OffsetMS: 1000, Notes: model.Notes{}},
	}, Collapse(events))
}

func TestOffsetsStrictlyIncrease(t *testing.T) {
	events := []model.NoteEvent{
		on(0, 60), on(0, 64), on(0, 67),
		off(250, 64), on(250, 62),
		off(250, 62), off(500, 60), off(500, 67),
	}

	checkpoints := Collapse(events)

	assert := assert.New(t)
	for i := 1; i < len(checkpoints); i++ {
		assert.Greater(checkpoints[i].OffsetMS, checkpoints[i-1].OffsetMS)
	}
}

func TestNotesSortedAndDeduped(t *testing.T) {
	// insertion order is descending and 60 is pressed twice
	events := []model.NoteEvent{
		on(0, 67), on(0, 64), on(0, 60), on(0, 60),
	}

	checkpoints := Collapse(events)

	assert := assert.New(t)
	assert.Len(checkpoints, 1)
	assert.Equal(model.Notes{60, 64, 67}, checkpoints[0].Notes)
}

func TestSameOffsetLastWriteWins(t *testing.T) {
	// on and off at the same millisecond produce one checkpoint with the
	// set after both applied
	events := []model.NoteEvent{
		on(0, 60),
		on(500, 64), off(500, 60),
	}

	checkpoints := Collapse(events)

	assert := assert.New(t)
	assert.Len(checkpoints, 2)
	assert.Equal(model.Notes{64}, checkpoints[1].Notes)
}

func TestOffForUnknownPitchIsNoOp(t *testing.T) {
	events := []model.NoteEvent{
		off(0, 60),
		off(100, 72),
	}

	assert.Empty(t, Collapse(events))
}

func TestEmptySetCheckpointIsEmitted(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), off(400, 60)}

	checkpoints := Collapse(events)

	assert := assert.New(t)
	assert.Len(checkpoints, 2)
	assert.Equal(model.Notes{}, checkpoints[1].Notes)
	assert.Equal(int64(400), checkpoints[1].OffsetMS)
}

func TestSummarize(t *testing.T) {
	checkpoints := []model.Checkpoint{
		{OffsetMS: 0, Notes: model.Notes{60}},
		{OffsetMS: 500, Notes: model.Notes{55, 64}},
		{OffsetMS: 1000, Notes: model.Notes{}},
	}

	assert := assert.New(t)
	assert.Equal(model.Summary{
		NumCheckpoints: 3,
		DurationMS:     1000,
		LowPitch:       55,
		HighPitch:      64,
	}, Summarize(checkpoints))
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, model.Summary{}, Summarize(nil))
}
