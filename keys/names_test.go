package keys

import (
	"testing"

	"github.com/micmonay/keybd_event"
	"github.com/stretchr/testify/assert"
)

func TestResolveKnownNames(t *testing.T) {
	assert := assert.New(t)

	code, err := Resolve("right")
	assert.NoError(err)
	assert.Equal(keybd_event.VK_RIGHT, code)

	code, err = Resolve("ENTER")
	assert.NoError(err)
	assert.Equal(keybd_event.VK_ENTER, code)

	code, err = Resolve("q")
	assert.NoError(err)
	assert.Equal(keybd_event.VK_Q, code)
}

func TestResolveAliases(t *testing.T) {
	assert := assert.New(t)

	esc, err := Resolve("esc")
	assert.NoError(err)
	escape, err2 := Resolve("escape")
	assert.NoError(err2)
	assert.Equal(esc, escape)
}

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("hyperspace")
	assert.Error(t, err)
}
