package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	InputMode       int     `json:"inputMode"`
}

// RunRecord is one finished run kept in the history.
type RunRecord struct {
	ID          string    `json:"id"`
	FinishedAt  time.Time `json:"finishedAt"`
	Won         bool      `json:"won"`
	Waves       int       `json:"waves"`
	Frames      int       `json:"frames"`
	Kills       int       `json:"kills"`
	DamageTaken int       `json:"damageTaken"`
	Switches    int       `json:"switches"`
	XP          [2]int    `json:"xp"`
	Levels      [2]int    `json:"levels"`
}

const (
	settingsKey = "settings"
	runsKey     = "runs"
)

var (
	gdataManager     *gdata.Manager
	gdataInitialized bool

	// Disk writes run on a single worker so they stay ordered
	writePool *ants.Pool
	storageMu sync.Mutex
)

// InitPersistence initializes the gdata manager and the write worker.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "exorcist",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}

	pool, err := ants.NewPool(1,
		ants.WithMaxBlockingTasks(16),
		ants.WithPanicHandler(func(p interface{}) {
			log.Printf("Warning: persistence worker panic: %v", p)
		}),
	)
	if err != nil {
		return fmt.Errorf("create persistence pool: %w", err)
	}

	gdataManager = m
	writePool = pool
	gdataInitialized = true
	return nil
}

// ShutdownPersistence waits for queued writes to finish.
func ShutdownPersistence() {
	if writePool == nil {
		return
	}
	if err := writePool.ReleaseTimeout(2 * time.Second); err != nil {
		log.Printf("Warning: persistence writes still pending: %v", err)
	}
	writePool = nil
}

// submitWrite runs fn on the write worker, or inline when the pool is
// unavailable.
func submitWrite(fn func()) {
	if writePool == nil {
		fn()
		return
	}
	if err := writePool.Submit(fn); err != nil {
		log.Printf("Warning: Could not queue save: %v", err)
	}
}

func loadItem(key string) ([]byte, error) {
	storageMu.Lock()
	defer storageMu.Unlock()
	return gdataManager.LoadItem(key)
}

func saveItem(key string, data []byte) error {
	storageMu.Lock()
	defer storageMu.Unlock()
	return gdataManager.SaveItem(key, data)
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := loadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings queues the settings for writing to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	submitWrite(func() {
		if err := saveItem(settingsKey, data); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	})
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		InputMode:       s.InputMode,
	}
	if s.Muted {
		saved.MusicVolume = s.PreMuteMusicVol
		saved.SFXVolume = s.PreMuteSFXVol
	}
	lastSavedSettings = saved
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the audio globals and the
// window. It runs at start-up before any scene exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	lastSavedSettings = saved
}

// lastSavedSettings seeds the settings menu of every new scene.
var lastSavedSettings *SavedSettings

// NewRunRecord builds the history entry of a finished run.
func NewRunRecord(g *components.GameOverData) RunRecord {
	return RunRecord{
		ID:          uuid.NewString(),
		FinishedAt:  time.Now(),
		Won:         g.Won,
		Waves:       g.Waves,
		Frames:      g.Stats.Frames,
		Kills:       g.Stats.Kills,
		DamageTaken: g.Stats.DamageTaken,
		Switches:    g.Stats.Switches,
		XP:          g.Stats.XP,
		Levels:      g.Levels,
	}
}

// LoadRuns returns the saved run history, newest first.
func LoadRuns() []RunRecord {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := loadItem(runsKey)
	if err != nil {
		log.Printf("Warning: Could not load run history: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var runs []RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		log.Printf("Warning: Could not parse run history: %v", err)
		return nil
	}
	return runs
}

// SaveRun queues rec for the run history.
func SaveRun(rec RunRecord) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	submitWrite(func() {
		runs := appendRun(LoadRuns(), rec, cfg.SettingsMenu.MaxRunHistory)
		data, err := json.Marshal(runs)
		if err != nil {
			log.Printf("Warning: Could not serialize run history: %v", err)
			return
		}
		if err := saveItem(runsKey, data); err != nil {
			log.Printf("Warning: Could not save run history: %v", err)
		}
	})
}

// appendRun puts rec first and keeps at most limit runs.
func appendRun(runs []RunRecord, rec RunRecord, limit int) []RunRecord {
	out := append([]RunRecord{rec}, runs...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BestRun ranks won runs by speed, then lost runs by waves reached and
// kills.
func BestRun(runs []RunRecord) (RunRecord, bool) {
	if len(runs) == 0 {
		return RunRecord{}, false
	}
	ranked := append([]RunRecord(nil), runs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Won != b.Won {
			return a.Won
		}
		if a.Won {
			return a.Frames < b.Frames
		}
		if a.Waves != b.Waves {
			return a.Waves > b.Waves
		}
		return a.Kills > b.Kills
	})
	return ranked[0], true
}

// FormatRun is the one line summary shown on the menu.
func FormatRun(r RunRecord) string {
	result := "Lost"
	if r.Won {
		result = "Cleared"
	}
	seconds := r.Frames / 60
	return fmt.Sprintf("Best: %s wave %d  %d kills  %d:%02d", result, r.Waves, r.Kills, seconds/60, seconds%60)
}
