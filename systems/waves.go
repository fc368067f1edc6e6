package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// waveStep is what the spawner wants done this frame.
type waveStep struct {
	StartedWave bool
	Spawn       bool
	Won         bool
}

// stepWave advances the spawner by one frame given the number of living
// enemies.
func stepWave(w *components.WaveData, alive int) waveStep {
	var step waveStep
	if w.Finished {
		return step
	}
	w.Alive = alive

	if w.Wave < cfg.Wave.TotalWaves {
		// Waves start exactly WaveInterval frames apart
		if w.Wave > 0 {
			w.NextWaveTimer--
		}
		if w.Wave == 0 || w.NextWaveTimer <= 0 {
			w.Wave++
			w.ToSpawn += cfg.Wave.EnemiesPerWave
			w.SpawnTimer = 0
			w.NextWaveTimer = cfg.Wave.WaveInterval
			step.StartedWave = true
		}
	}

	if w.ToSpawn > 0 {
		w.SpawnTimer--
		if w.SpawnTimer <= 0 {
			w.ToSpawn--
			w.SpawnTimer = cfg.Wave.SpawnDelay
			step.Spawn = true
		}
	}

	if w.AllSpawned(cfg.Wave.TotalWaves) && !step.Spawn && alive == 0 {
		w.Finished = true
		w.Won = true
		step.Won = true
	}
	return step
}

// countAlive counts enemies that are not dying.
func countAlive(world donburi.World) int {
	alive := 0
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			alive++
		}
	})
	return alive
}

// UpdateWaves runs the wave spawner and decides when the run is won.
func UpdateWaves(ecs *ecs.ECS) {
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	if wave.Finished {
		return
	}
	if stats := runStats(ecs); stats != nil {
		stats.Frames++
	}

	step := stepWave(wave, countAlive(ecs.World))
	if step.StartedWave {
		PlaySFX(ecs, cfg.SoundWaveStart)
		if wave.Wave == 1 {
			Announce(ecs, fmt.Sprintf("Wave %d - press {switch} to cross over", wave.Wave))
		} else {
			Announce(ecs, fmt.Sprintf("Wave %d", wave.Wave))
		}
	}
	if step.Spawn {
		spawnWaveEnemy(ecs)
	}
	if step.Won {
		log.Printf("All %d waves cleared", cfg.Wave.TotalWaves)
	}
}

func spawnWaveEnemy(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	spawn, enemyType, ok := pickSpawn(level, cfg.Wave.EnemyTypes, rand.Intn)
	if !ok {
		log.Printf("Warning: level %q has no enemy spawns", level.Name)
		return
	}
	factory.CreateEnemyCentered(ecs, spawn.X, spawn.Y, enemyType)
}

// pickSpawn chooses a random spawn point and the enemy type to put there.
// Spawn points that name a type keep it.
func pickSpawn(level *assets.Level, types []string, intn func(int) int) (assets.EnemySpawn, string, bool) {
	if level == nil || len(level.EnemySpawns) == 0 || len(types) == 0 {
		return assets.EnemySpawn{}, "", false
	}
	spawn := level.EnemySpawns[intn(len(level.EnemySpawns))]
	enemyType := spawn.EnemyType
	if enemyType == "" {
		enemyType = types[intn(len(types))]
	}
	return spawn, enemyType, true
}

// RunResult reports whether the run is over and, if so, its summary for
// the game over screen.
func RunResult(ecs *ecs.ECS) (components.GameOverData, bool) {
	var g components.GameOverData
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return g, false
	}
	wave := components.Wave.Get(entry)
	if !wave.Finished {
		return g, false
	}
	g.Won = wave.Won
	g.Waves = wave.Wave
	if stats := runStats(ecs); stats != nil {
		g.Stats = *stats
	}
	if p := progress(ecs); p != nil {
		for i, t := range p.Tracks {
			g.Levels[i] = t.Level
		}
	}
	if level, ok := components.Level.First(ecs.World); ok {
		g.LevelIndex = components.Level.Get(level).LevelIndex
	}
	return g, true
}
