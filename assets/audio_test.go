package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/exorcist/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthToneLength(t *testing.T) {
	pcm := SynthTone(config.ToneConfig{StartHz: 440, EndHz: 440, DurationMs: 100, Volume: 1}, 44100)
	assert.Len(t, pcm, 4410*bytesPerFrame)

	assert.Nil(t, SynthTone(config.ToneConfig{DurationMs: 0}, 44100))
}

func TestSynthToneStereoAndBounded(t *testing.T) {
	pcm := SynthTone(config.ToneConfig{StartHz: 200, EndHz: 800, DurationMs: 50, Square: true, Noise: 0.5, Volume: 0.5}, 22050)
	require.NotEmpty(t, pcm)

	// Volume 0.5 of full scale, plus one for rounding
	limit := int16(16384)
	for i := 0; i < len(pcm); i += bytesPerFrame {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		assert.Equal(t, l, r)
		assert.LessOrEqual(t, l, limit)
		assert.GreaterOrEqual(t, l, -limit)
	}
}

func TestSynthToneDeterministic(t *testing.T) {
	tone := config.Sound.Tones[config.SoundExplosion]
	assert.Equal(t, SynthTone(tone, 44100), SynthTone(tone, 44100))
}

func TestSynthMusic(t *testing.T) {
	pcm := SynthMusic([]float64{55, 65}, 120, 1000)
	assert.Len(t, pcm, 2*500*bytesPerFrame)
	assert.Nil(t, SynthMusic(nil, 120, 1000))
}
