package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	for _, name := range []FontName{Body, Bold, Title, Small} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Panics(t, func() { LoadFont("junk", []byte("not a font")) })
	LoadFont("regular", goregular.TTF)
	assert.True(t, Loaded("regular"))
}
