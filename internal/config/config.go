// Package config provides YAML-based settings loading for the arkanoid
// simulation. Out-of-range values are never rejected: every field is
// silently clamped to its documented bounds.
package config

// Bounds for user-tunable settings. Values outside these ranges are
// clamped, not rejected.
const (
	ColumnsMin = 4
	ColumnsMax = 30
	RowsMin    = 3
	RowsMax    = 15
	PaddingMin = 0.0
	PaddingMax = 20.0

	BallRadiusMin = 4.0
	BallRadiusMax = 48.0
	BallSpeedMin  = 60.0
	BallSpeedMax  = 1000.0

	PaddleWidthMin = 40.0
	// Paddle may cover at most this fraction of the world width.
	PaddleWidthMaxFrac = 0.95
)

// WorldSettings defines the logical coordinate space. Rendering maps it to
// the display independently.
type WorldSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallSettings defines the ball geometry and speed envelope.
type BallSettings struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Initial target speed, world units/sec
}

// PaddleSettings defines the carriage geometry and movement speed.
type PaddleSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BrickSettings defines the level grid shape.
type BrickSettings struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	PaddingX float64 `yaml:"padding_x"`
	PaddingY float64 `yaml:"padding_y"`
}

// GameplaySettings defines session-level rules.
type GameplaySettings struct {
	Lives          int `yaml:"lives"`
	ScorePerDollar int `yaml:"score_per_dollar"`
}

// Settings is the full settings record passed to the simulation's reset.
type Settings struct {
	World    WorldSettings    `yaml:"world"`
	Ball     BallSettings     `yaml:"ball"`
	Paddle   PaddleSettings   `yaml:"paddle"`
	Bricks   BrickSettings    `yaml:"bricks"`
	Gameplay GameplaySettings `yaml:"gameplay"`
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns a copy of the settings with every field forced into its
// valid range. Zero or negative world dimensions fall back to the default
// world; everything else clamps per the bounds above.
func (s Settings) Clamped() Settings {
	out := s

	def := Default()
	if out.World.Width <= 0 {
		out.World.Width = def.World.Width
	}
	if out.World.Height <= 0 {
		out.World.Height = def.World.Height
	}

	out.Ball.Radius = clampF(out.Ball.Radius, BallRadiusMin, BallRadiusMax)
	out.Ball.Speed = clampF(out.Ball.Speed, BallSpeedMin, BallSpeedMax)

	out.Paddle.Width = clampF(out.Paddle.Width, PaddleWidthMin, out.World.Width*PaddleWidthMaxFrac)
	if out.Paddle.Height <= 0 {
		out.Paddle.Height = def.Paddle.Height
	}
	if out.Paddle.Speed <= 0 {
		out.Paddle.Speed = def.Paddle.Speed
	}

	out.Bricks.Columns = clampI(out.Bricks.Columns, ColumnsMin, ColumnsMax)
	out.Bricks.Rows = clampI(out.Bricks.Rows, RowsMin, RowsMax)
	out.Bricks.PaddingX = clampF(out.Bricks.PaddingX, PaddingMin, PaddingMax)
	out.Bricks.PaddingY = clampF(out.Bricks.PaddingY, PaddingMin, PaddingMax)

	if out.Gameplay.Lives <= 0 {
		out.Gameplay.Lives = def.Gameplay.Lives
	}
	if out.Gameplay.ScorePerDollar <= 0 {
		out.Gameplay.ScorePerDollar = def.Gameplay.ScorePerDollar
	}

	return out
}
