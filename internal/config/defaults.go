package config

import (
	_ "embed"
)

//go:embed defaults/facade.yaml
var defaultFacadeYAML []byte

// DefaultFacadeConfig returns the default Facade configuration.
func DefaultFacadeConfig() FacadeConfig {
	return FacadeConfig{
		Display: FacadeDisplay{
			Width:    384,
			Height:   216,
			TileSize: 16,
		},
		Physics: FacadePhysics{
			SpeedDenominator: 16,
			AccelX:           2,
			AccelY:           4,
			LaunchSpeed:      48,
			MaxJumpHold:      14,
			WalkDivisor:      2,
			AnimPeriod:       10,
			OffscreenMag:     4,
		},
		Timing: FacadeTiming{
			TickRate:  60,
			HoldTicks: 8,
		},
		Difficulty: DifficultyNormal,
	}
}
