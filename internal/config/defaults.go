package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Neon Runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:    800,
			Height:   400,
			GroundY:  350,
			CeilingY: 60,
		},
		Physics: PhysicsConfig{
			Gravity:           0.7,
			JumpImpulse:       -14,
			BaseSpeed:         4,
			MaxSpeed:          12,
			ScorePerSpeedStep: 50,
			ScorePerMusicStep: 500,
			CeilingBounce:     2,
			LandingTolerance:  5,
		},
		Player: PlayerConfig{
			X:            80,
			HitboxOffset: 5,
			Width:        35,
			Height:       90,
		},
		Spawn: SpawnConfig{
			Platform: PlatformSpawn{
				Delay: DelayCurve{
					InitialMS:  1000,
					BaseMS:     2000,
					FloorMS:    800,
					PerScoreMS: 2,
					JitterMS:   500,
				},
				MinRise:    80,
				RiseRange:  100,
				MinWidth:   100,
				WidthRange: 80,
				Height:     20,
			},
			Object: ObjectSpawn{
				Delay: DelayCurve{
					InitialMS:  1500,
					BaseMS:     1800,
					FloorMS:    600,
					PerScoreMS: 3,
					JitterMS:   600,
				},
				HeartChance: 0.08,
				EnemyChance: 0.57,
			},
		},
		Pickups: PickupConfig{
			Lanes:         []float64{70, 150},
			CoinSize:      20,
			CoinScore:     10,
			HeartSize:     25,
			HeartBonus:    50,
			EnemySize:     35,
			EnemyLift:     35,
			DodgeScore:    1,
			EnemyVariants: []string{"ghost", "ghost2", "dino", "dino2"},
		},
		Health: HealthConfig{
			MaxHearts:      3,
			InvulnerableMS: 1500,
			BlinkPeriod:    10,
			BlinkVisible:   5,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
