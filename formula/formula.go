package formula

import (
	"strconv"
	"strings"

	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/model"
)

// Render produces the calculator assignment for one checkpoint, e.g.
// `A\to\left[0,4,7\right]` for notes {60, 64, 67}. Pitches are relative
// to middle C and keep their ascending order. An empty set renders with
// nothing between the brackets.
func Render(notes model.Notes) string {
	rel := make([]string, len(notes))
	for i, note := range notes {
		rel[i] = strconv.Itoa(note - constants.ReferencePitch)
	}
	return `A\to\left[` + strings.Join(rel, ",") + `\right]`
}
