package systems

import (
	"log"
	"time"

	"github.com/automoto/exorcist/assets"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/yohamta/donburi/ecs"
)

var tuningWatcher *assets.Watcher

// Modification time of each tuning file when it was last applied
var tuningModTimes = make(map[string]time.Time)

// LoadTuning installs enemies.yaml into the enemy table and returns the
// upgrade catalog. Files that fail to load leave the compiled defaults.
func LoadTuning() []leveling.Upgrade {
	reloadEnemies()
	return loadCatalog()
}

func reloadEnemies() {
	types, err := assets.LoadEnemyTypes()
	if err != nil {
		log.Printf("Warning: Could not load enemy tuning: %v", err)
		return
	}
	cfg.Enemy.Types = types
}

func loadCatalog() []leveling.Upgrade {
	catalog, err := assets.LoadUpgrades()
	if err != nil {
		log.Printf("Warning: Could not load upgrades: %v", err)
		return leveling.DefaultCatalog()
	}
	return catalog
}

// StartTuningWatch starts reloading tuning files when they change on disk.
func StartTuningWatch() error {
	if tuningWatcher != nil {
		return nil
	}
	w, err := assets.NewWatcher()
	if err != nil {
		return err
	}
	tuningWatcher = w
	log.Printf("Watching %s for tuning changes", assets.DataDir)
	return nil
}

// StopTuningWatch closes the watcher started by StartTuningWatch.
func StopTuningWatch() {
	if tuningWatcher == nil {
		return
	}
	if err := tuningWatcher.Close(); err != nil {
		log.Printf("Warning: Could not close tuning watcher: %v", err)
	}
	tuningWatcher = nil
}

// tuningChanged reports whether name was modified since it was last
// applied. Events that leave the modification time alone, such as chmod,
// are skipped. A deleted file counts as a change so the embedded copy is
// picked up.
func tuningChanged(name string) bool {
	mod, ok := assets.DataModTime(name)
	if !ok {
		delete(tuningModTimes, name)
		return true
	}
	if last, seen := tuningModTimes[name]; seen && !mod.After(last) {
		return false
	}
	tuningModTimes[name] = mod
	return true
}

// UpdateTuning applies tuning edits picked up by the watcher. Enemies
// spawned after a reload use the new values.
func UpdateTuning(ecs *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	for _, name := range tuningWatcher.Drain() {
		if !tuningChanged(name) {
			continue
		}
		switch name {
		case assets.EnemiesFile:
			reloadEnemies()
			log.Printf("Reloaded %s", name)
		case assets.UpgradesFile:
			catalog := loadCatalog()
			if p := progress(ecs); p != nil {
				p.Catalog = catalog
			}
			log.Printf("Reloaded %s", name)
		}
	}

	select {
	case err, ok := <-tuningWatcher.Errors:
		if ok {
			log.Printf("Warning: tuning watcher: %v", err)
		}
	default:
	}
}
