package artifact

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/formula"
	"github.com/jsphweid/desmidi/model"
	"github.com/jsphweid/desmidi/util"
	"github.com/pkg/errors"
)

// data.json is an object keyed by string millisecond offset. Keys are
// emitted in numeric offset order, not lexical order, so formulas.txt
// (written from the same iteration) stays line-for-line aligned with it.
// encoding/json would sort object keys lexically ("1000" before "500"),
// so the object is assembled by hand.
func encodeData(checkpoints []model.Checkpoint) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString("{")
	for i, cp := range checkpoints {
		if i > 0 {
			buf.WriteString(",")
		}
		notes, err := json.Marshal(cp.Notes)
		if err != nil {
			return nil, err
		}
		buf.WriteString("\n  \"" + strconv.FormatInt(cp.OffsetMS, 10) + "\": ")
		buf.Write(notes)
	}
	if len(checkpoints) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func encodeFormulas(checkpoints []model.Checkpoint) []byte {
	formulas := make([]string, len(checkpoints))
	for i, cp := range checkpoints {
		formulas[i] = formula.Render(cp.Notes)
	}
	return []byte(strings.Join(formulas, "\n"))
}

// WriteAll writes both artifacts into dir, creating it if absent.
func WriteAll(dir string, checkpoints []model.Checkpoint) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrap(err, "creating song folder")
	}

	data, err := encodeData(checkpoints)
	if err != nil {
		return errors.Wrap(err, "encoding "+constants.DataFilename)
	}
	dataPath := filepath.Join(dir, constants.DataFilename)
	if err := os.WriteFile(dataPath, data, 0666); err != nil {
		return errors.Wrap(err, "writing "+constants.DataFilename)
	}

	formulasPath := filepath.Join(dir, constants.FormulasFilename)
	if err := os.WriteFile(formulasPath, encodeFormulas(checkpoints), 0666); err != nil {
		return errors.Wrap(err, "writing "+constants.FormulasFilename)
	}
	return nil
}

// ReadSong loads data.json from a song folder back into the checkpoint
// sequence, sorted by numeric offset regardless of key order in the file.
func ReadSong(dir string) ([]model.Checkpoint, error) {
	path := filepath.Join(dir, constants.DataFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}

	raw := make(map[string]model.Notes)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parsing %v", path)
	}

	byOffset := make(map[int64]model.Notes, len(raw))
	for key, notes := range raw {
		offset, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad offset key %q in %v", key, path)
		}
		if notes == nil {
			notes = model.Notes{}
		}
		byOffset[offset] = notes
	}

	var res []model.Checkpoint
	for _, offset := range util.SortedKeys(byOffset) {
		res = append(res, model.Checkpoint{OffsetMS: offset, Notes: byOffset[offset]})
	}
	return res, nil
}
