package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// Default returns the built-in settings, used when no YAML file is found
// and as the fallback for missing fields.
func Default() Settings {
	return Settings{
		World: WorldSettings{
			Width:  800,
			Height: 600,
		},
		Ball: BallSettings{
			Radius: 10,
			Speed:  250,
		},
		Paddle: PaddleSettings{
			Width:  100,
			Height: 18,
			Speed:  500,
		},
		Bricks: BrickSettings{
			Columns:  12,
			Rows:     6,
			PaddingX: 4,
			PaddingY: 4,
		},
		Gameplay: GameplaySettings{
			Lives:          3,
			ScorePerDollar: 100,
		},
	}
}
