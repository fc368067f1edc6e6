package components

import "github.com/yohamta/donburi"

// WaveData is the singleton wave spawner state.
type WaveData struct {
	Wave          int // Waves started so far
	ToSpawn       int // Enemies left to spawn in the current wave
	SpawnTimer    int
	NextWaveTimer int
	Alive         int
	Finished      bool
	Won           bool
}

var Wave = donburi.NewComponentType[WaveData]()

// AllSpawned reports whether every wave has been fully spawned.
func (w *WaveData) AllSpawned(totalWaves int) bool {
	return w.Wave >= totalWaves && w.ToSpawn == 0
}

// RunStatsData accumulates numbers for the game over screen.
type RunStatsData struct {
	Frames      int
	Kills       int
	DamageTaken int
	XP          [2]int
	Switches    int
}

var RunStats = donburi.NewComponentType[RunStatsData]()
