package config

// ApplyFacadePreset adjusts physics for a difficulty preset. Easy gives a
// longer jump hold and gentler gravity; hard shortens the hold and makes
// the walk speed closer to the run speed, which is harder to control.
func ApplyFacadePreset(cfg *FacadeConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	switch preset {
	case DifficultyEasy:
		cfg.Physics.MaxJumpHold += cfg.Physics.MaxJumpHold / 3
		if cfg.Physics.AccelY > 1 {
			cfg.Physics.AccelY--
		}
	case DifficultyHard:
		cfg.Physics.MaxJumpHold -= cfg.Physics.MaxJumpHold / 3
		cfg.Physics.AccelY++
	}
}
