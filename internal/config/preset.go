package config

// SpeedPreset represents a named gravity cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed" // keep the configured gravity_every
)

// GravityEveryForPreset returns the gravity divider for a preset.
// Unknown and fixed presets return 0, meaning "leave the config alone".
func GravityEveryForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 15
	case SpeedNormal:
		return 10
	case SpeedFast:
		return 5
	default:
		return 0
	}
}

// IsKnownPreset reports whether preset names a supported speed.
func IsKnownPreset(preset SpeedPreset) bool {
	switch preset {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed:
		return true
	default:
		return false
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *TetrisConfig, preset SpeedPreset) {
	if every := GravityEveryForPreset(preset); every > 0 {
		cfg.Timing.GravityEvery = every
	}
}
