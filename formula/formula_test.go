package formula

import (
	"testing"

	"github.com/jsphweid/desmidi/model"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	cases := []struct {
		notes    model.Notes
		expected string
	}{
		{model.Notes{60, 64, 67}, `A\to\left[0,4,7\right]`},
		{model.Notes{60}, `A\to\left[0\right]`},
		{model.Notes{64}, `A\to\left[4\right]`},
		{model.Notes{48, 72}, `A\to\left[-12,12\right]`},
		{model.Notes{}, `A\to\left[\right]`},
		{nil, `A\to\left[\right]`},
	}

	assert := assert.New(t)
	for _, c := range cases {
		assert.Equal(c.expected, Render(c.notes))
	}
}
