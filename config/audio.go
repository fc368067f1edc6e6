package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundMelee
	SoundTalisman
	SoundHit
	SoundPlayerHurt
	SoundDeath
	SoundExplosion
	// Movement sounds
	SoundJump
	SoundLand
	SoundWallAttach
	// Game sounds
	SoundRealitySwitch
	SoundOrbCollect
	SoundLevelUp
	SoundWaveStart
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneConfig describes a synthesized sound effect. The frequency sweeps
// linearly from StartHz to EndHz over the duration.
type ToneConfig struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
	Square     bool    // Square wave instead of sine
	Noise      float64 // 0..1 mix of white noise
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones      map[SoundID]ToneConfig
	MusicNotes []float64 // Looping bass line, one note per beat
	MusicBPM   int
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.8,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundMelee:         {StartHz: 220, EndHz: 110, DurationMs: 80, Noise: 0.5, Volume: 0.6},
			SoundTalisman:      {StartHz: 880, EndHz: 1320, DurationMs: 90, Volume: 0.4},
			SoundHit:           {StartHz: 160, EndHz: 60, DurationMs: 90, Square: true, Noise: 0.3, Volume: 0.7},
			SoundPlayerHurt:    {StartHz: 300, EndHz: 120, DurationMs: 160, Square: true, Volume: 0.6},
			SoundDeath:         {StartHz: 400, EndHz: 40, DurationMs: 400, Square: true, Noise: 0.2, Volume: 0.6},
			SoundExplosion:     {StartHz: 90, EndHz: 30, DurationMs: 250, Noise: 0.8, Volume: 0.7},
			SoundJump:          {StartHz: 330, EndHz: 660, DurationMs: 70, Square: true, Volume: 0.3},
			SoundLand:          {StartHz: 120, EndHz: 80, DurationMs: 50, Noise: 0.6, Volume: 0.3},
			SoundWallAttach:    {StartHz: 200, EndHz: 180, DurationMs: 40, Noise: 0.4, Volume: 0.3},
			SoundRealitySwitch: {StartHz: 440, EndHz: 110, DurationMs: 220, Volume: 0.5},
			SoundOrbCollect:    {StartHz: 1040, EndHz: 1560, DurationMs: 60, Volume: 0.3},
			SoundLevelUp:       {StartHz: 520, EndHz: 1040, DurationMs: 300, Square: true, Volume: 0.4},
			SoundWaveStart:     {StartHz: 110, EndHz: 220, DurationMs: 400, Square: true, Volume: 0.4},
			SoundMenuNavigate:  {StartHz: 660, EndHz: 660, DurationMs: 30, Square: true, Volume: 0.25},
			SoundMenuSelect:    {StartHz: 660, EndHz: 990, DurationMs: 80, Square: true, Volume: 0.3},
		},
		MusicNotes: []float64{55, 55, 65.41, 55, 49, 49, 61.74, 49},
		MusicBPM:   120,
	}
}
