package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedBounds(t *testing.T) {
	s := Settings{
		World:  WorldSettings{Width: 800, Height: 600},
		Ball:   BallSettings{Radius: 1000, Speed: -5},
		Paddle: PaddleSettings{Width: 10000},
		Bricks: BrickSettings{
			Columns:  999,
			Rows:     -3,
			PaddingX: -1,
			PaddingY: 500,
		},
	}

	c := s.Clamped()

	assert.Equal(t, BallRadiusMax, c.Ball.Radius)
	assert.Equal(t, BallSpeedMin, c.Ball.Speed)
	assert.Equal(t, 800*PaddleWidthMaxFrac, c.Paddle.Width)
	assert.Equal(t, ColumnsMax, c.Bricks.Columns)
	assert.Equal(t, RowsMin, c.Bricks.Rows)
	assert.Equal(t, PaddingMin, c.Bricks.PaddingX)
	assert.Equal(t, PaddingMax, c.Bricks.PaddingY)
}

func TestClampedZeroValueFallsBackToDefaults(t *testing.T) {
	c := Settings{}.Clamped()
	def := Default()

	assert.Equal(t, def.World, c.World)
	assert.Equal(t, def.Paddle.Height, c.Paddle.Height)
	assert.Equal(t, def.Paddle.Speed, c.Paddle.Speed)
	assert.Equal(t, def.Gameplay.Lives, c.Gameplay.Lives)
	assert.Equal(t, def.Gameplay.ScorePerDollar, c.Gameplay.ScorePerDollar)
	// Numeric fields clamp to their minimums rather than defaults
	assert.Equal(t, BallRadiusMin, c.Ball.Radius)
	assert.Equal(t, ColumnsMin, c.Bricks.Columns)
}

func TestClampedPreservesValidValues(t *testing.T) {
	s := Default()
	assert.Equal(t, s, s.Clamped())
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	body := []byte("world:\n  width: 640\n  height: 480\nball:\n  radius: 8\n  speed: 300\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640.0, cfg.World.Width)
	assert.Equal(t, 480.0, cfg.World.Height)
	assert.Equal(t, 8.0, cfg.Ball.Radius)
	assert.Equal(t, 300.0, cfg.Ball.Speed)
	// Unspecified sections fall back via clamping
	assert.Equal(t, Default().Gameplay.Lives, cfg.Gameplay.Lives)
}

func TestLoadCustomPathMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no local files in the test cwd, Load falls
	// through to the embedded YAML, which must match Default().
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
