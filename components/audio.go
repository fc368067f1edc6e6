package components

import (
	cfg "github.com/automoto/exorcist/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-scene audio queue (singleton component). Sounds
// are queued during the update and played once by the audio system.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
