package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/model"
	"github.com/stretchr/testify/assert"
)

var song = []model.Checkpoint{
	{OffsetMS: 0, Notes: model.Notes{60}},
	{OffsetMS: 500, Notes: model.Notes{64}},
	{OffsetMS: 1000, Notes: model.Notes{}},
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "song")

	assert := assert.New(t)
	assert.NoError(WriteAll(dir, song))

	loaded, err := ReadSong(dir)
	assert.NoError(err)
	assert.Equal(song, loaded)
}

func TestDataKeysEmittedInNumericOrder(t *testing.T) {
	// "1000" sorts before "500" lexically, which would misalign the two
	// artifacts if keys were emitted the way encoding/json orders them
	dir := t.TempDir()
	assert := assert.New(t)
	assert.NoError(WriteAll(dir, song))

	data, err := os.ReadFile(filepath.Join(dir, constants.DataFilename))
	assert.NoError(err)

	text := string(data)
	assert.Less(strings.Index(text, `"0"`), strings.Index(text, `"500"`))
	assert.Less(strings.Index(text, `"500"`), strings.Index(text, `"1000"`))
}

func TestFormulasAlignWithData(t *testing.T) {
	dir := t.TempDir()
	assert := assert.New(t)
	assert.NoError(WriteAll(dir, song))

	data, err := os.ReadFile(filepath.Join(dir, constants.FormulasFilename))
	assert.NoError(err)

	assert.Equal([]string{
		`A\to\left[0\right]`,
		`A\to\left[4\right]`,
		`A\to\left[\right]`,
	}, strings.Split(string(data), "\n"))
}

func TestWriteEmptySong(t *testing.T) {
	dir := t.TempDir()
	assert := assert.New(t)
	assert.NoError(WriteAll(dir, nil))

	data, err := os.ReadFile(filepath.Join(dir, constants.DataFilename))
	assert.NoError(err)
	assert.Equal("{}", string(data))

	loaded, err := ReadSong(dir)
	assert.NoError(err)
	assert.Empty(loaded)
}

func TestReadSortsByNumericOffset(t *testing.T) {
	dir := t.TempDir()
	// keys deliberately in lexical order, which is not numeric order
	raw := `{"0": [60], "1000": [], "500": [64]}`
	assert := assert.New(t)
	assert.NoError(os.WriteFile(filepath.Join(dir, constants.DataFilename), []byte(raw), 0666))

	loaded, err := ReadSong(dir)
	assert.NoError(err)
	assert.Equal(song, loaded)
}

func TestReadMissingDataFile(t *testing.T) {
	_, err := ReadSong(t.TempDir())
	assert.Error(t, err)
}

func TestReadRejectsBadOffsetKey(t *testing.T) {
	dir := t.TempDir()
	raw := `{"abc": [60]}`
	assert := assert.New(t)
	assert.NoError(os.WriteFile(filepath.Join(dir, constants.DataFilename), []byte(raw), 0666))

	_, err := ReadSong(dir)
	assert.Error(err)
}
