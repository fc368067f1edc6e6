package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. EXORCIST_WINDOW_SCALE.
const EnvPrefix = "EXORCIST"

// Load overlays the compiled defaults with values from an optional YAML
// file and EXORCIST_* environment variables. A missing file is not an error.
func Load(path string) error {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}
	apply(v)
	if err := applyControls(v); err != nil {
		return err
	}
	return validate()
}

// applyControls rebinds keyboard keys listed under "controls", e.g.
//
//	controls:
//	  jump: [Space, W]
func applyControls(v *viper.Viper) error {
	for action := ActionNone + 1; action < ActionCount; action++ {
		key := "controls." + action.String()
		if !v.IsSet(key) {
			continue
		}
		if err := RebindKeys(action, v.GetStringSlice(key)); err != nil {
			return err
		}
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("window.scale", C.Scale)
	v.SetDefault("window.title", C.Title)
	v.SetDefault("debug.skip_menu", Debug.SkipMenu)
	v.SetDefault("debug.draw_boxes", Debug.DrawBoxes)
	v.SetDefault("debug.watch_tuning", Debug.WatchTuning)
	v.SetDefault("audio.music_volume", Audio.DefaultMusicVol)
	v.SetDefault("audio.sfx_volume", Audio.DefaultSFXVol)
	v.SetDefault("reality.start", Reality.Start)
	v.SetDefault("reality.inactive_opacity", Reality.InactiveOpacity)
	v.SetDefault("reality.transition_speed", Reality.TransitionSpeed)
	v.SetDefault("waves.total", Wave.TotalWaves)
	v.SetDefault("waves.enemies_per_wave", Wave.EnemiesPerWave)
	v.SetDefault("waves.spawn_delay", Wave.SpawnDelay)
	v.SetDefault("waves.interval", Wave.WaveInterval)
	v.SetDefault("combat.talisman_stun_frames", Ranged.StunFrames)
	return v
}

func apply(v *viper.Viper) {
	C.Scale = v.GetFloat64("window.scale")
	C.Title = v.GetString("window.title")
	Debug.SkipMenu = v.GetBool("debug.skip_menu")
	Debug.DrawBoxes = v.GetBool("debug.draw_boxes")
	Debug.WatchTuning = v.GetBool("debug.watch_tuning")
	Audio.DefaultMusicVol = v.GetFloat64("audio.music_volume")
	Audio.DefaultSFXVol = v.GetFloat64("audio.sfx_volume")
	Reality.Start = v.GetInt("reality.start")
	Reality.InactiveOpacity = v.GetFloat64("reality.inactive_opacity")
	Reality.TransitionSpeed = v.GetFloat64("reality.transition_speed")
	Wave.TotalWaves = v.GetInt("waves.total")
	Wave.EnemiesPerWave = v.GetInt("waves.enemies_per_wave")
	Wave.SpawnDelay = v.GetInt("waves.spawn_delay")
	Wave.WaveInterval = v.GetInt("waves.interval")
	Ranged.StunFrames = v.GetInt("combat.talisman_stun_frames")
}

func validate() error {
	if Reality.Start < 0 || Reality.Start >= len(Reality.Names) {
		return fmt.Errorf("reality.start %d out of range [0,%d)", Reality.Start, len(Reality.Names))
	}
	if Reality.InactiveOpacity < 0 || Reality.InactiveOpacity > 1 {
		return fmt.Errorf("reality.inactive_opacity %.2f must be within [0,1]", Reality.InactiveOpacity)
	}
	if Reality.TransitionSpeed < 0 {
		return fmt.Errorf("reality.transition_speed must not be negative")
	}
	if Ranged.StunFrames < 0 {
		return fmt.Errorf("combat.talisman_stun_frames must not be negative")
	}
	if C.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive")
	}
	if Wave.TotalWaves < 1 || Wave.EnemiesPerWave < 1 {
		return fmt.Errorf("waves.total and waves.enemies_per_wave must be at least 1")
	}
	return nil
}
