package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/exorcist/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerFrame is 16-bit stereo, the format ebiten's audio context plays.
const bytesPerFrame = 4

// SynthTone renders a tone as 16-bit little-endian stereo PCM. The pitch
// sweeps linearly and a short attack and release envelope avoid clicks.
func SynthTone(t config.ToneConfig, sampleRate int) []byte {
	n := sampleRate * t.DurationMs / 1000
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	buf := make([]byte, n*bytesPerFrame)
	noise := rand.New(rand.NewSource(int64(t.StartHz*1000 + t.EndHz)))

	attack := max(1, n/20)
	release := max(1, n/4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var v float64
		if t.Square {
			v = 1
			if math.Sin(phase) < 0 {
				v = -1
			}
		} else {
			v = math.Sin(phase)
		}
		if t.Noise > 0 {
			v = v*(1-t.Noise) + (noise.Float64()*2-1)*t.Noise
		}

		env := 1.0
		if i < attack {
			env = float64(i) / float64(attack)
		} else if i > n-release {
			env = float64(n-i) / float64(release)
		}
		writeFrame(buf, i, v*env*t.Volume)
	}
	return buf
}

// SynthMusic renders one bar loop of the bass line.
func SynthMusic(notes []float64, bpm, sampleRate int) []byte {
	if len(notes) == 0 || bpm <= 0 || sampleRate <= 0 {
		return nil
	}
	beat := sampleRate * 60 / bpm
	buf := make([]byte, 0, beat*len(notes)*bytesPerFrame)
	for _, hz := range notes {
		note := SynthTone(config.ToneConfig{
			StartHz:    hz,
			EndHz:      hz,
			DurationMs: 60000 / bpm,
			Volume:     0.35,
		}, sampleRate)
		buf = append(buf, note...)
	}
	return buf
}

func writeFrame(buf []byte, i int, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := uint16(int16(v * math.MaxInt16))
	off := i * bytesPerFrame
	binary.LittleEndian.PutUint16(buf[off:], s)
	binary.LittleEndian.PutUint16(buf[off+2:], s)
}

// AudioLoader handles synthesis and caching of audio
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured tone so first playback has no lag.
func (l *AudioLoader) PreloadSFX() {
	for id := range config.Sound.Tones {
		l.pcm(id)
	}
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, bool) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, true
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil, false
	}
	data := SynthTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, true
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, ok := l.pcm(id)
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadMusic returns a looping player for the background bass line.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	data := SynthMusic(config.Sound.MusicNotes, config.Sound.MusicBPM, l.context.SampleRate())
	if len(data) == 0 {
		return nil, fmt.Errorf("no music configured")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}
