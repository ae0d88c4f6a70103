package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestBuildLevelLayout(t *testing.T) {
	s := config.Default()
	world := core.V(s.World.Width, s.World.Height)
	lvl := buildLevel(s, world)

	if got, want := len(lvl.Bricks), s.Bricks.Columns*s.Bricks.Rows; got != want {
		t.Fatalf("brick count = %d, want %d", got, want)
	}
	if lvl.AliveCount() != len(lvl.Bricks) {
		t.Errorf("new level has dead bricks: %d alive of %d", lvl.AliveCount(), len(lvl.Bricks))
	}

	area := core.NewRect(
		gridSideMargin, gridTopMargin,
		world.X()-gridSideMargin*2, world.Y()*gridAreaFrac,
	)
	for i, b := range lvl.Bricks {
		if b.Rect.Left() < area.Left()-1e-9 || b.Rect.Right() > area.Right()+1e-9 {
			t.Errorf("brick %d outside horizontal area: %v", i, b.Rect)
		}
		if b.Rect.Top() < area.Top()-1e-9 {
			t.Errorf("brick %d above the grid area: %v", i, b.Rect)
		}
		if b.HP < 1 || b.HP > 3 {
			t.Errorf("brick %d HP = %d, want 1..3", i, b.HP)
		}
		if b.Color != b.BaseColor {
			t.Errorf("brick %d spawned pre-tinted", i)
		}
	}
}

func TestBuildLevelScoreByRow(t *testing.T) {
	s := config.Default()
	lvl := buildLevel(s, core.V(s.World.Width, s.World.Height))

	rows := s.Bricks.Rows
	for row := 0; row < rows; row++ {
		want := 10 + (rows-1-row)*2
		got := lvl.Bricks[row*lvl.Cols].Score
		if got != want {
			t.Errorf("row %d score = %d, want %d", row, got, want)
		}
	}
	// Top rows outscore bottom rows
	if lvl.Bricks[0].Score <= lvl.Bricks[(rows-1)*lvl.Cols].Score {
		t.Error("top row does not outscore bottom row")
	}
}

func TestBuildLevelDeterministic(t *testing.T) {
	s := config.Default()
	world := core.V(s.World.Width, s.World.Height)
	a := buildLevel(s, world)
	b := buildLevel(s, world)

	for i := range a.Bricks {
		if a.Bricks[i] != b.Bricks[i] {
			t.Fatalf("brick %d differs between identical builds: %+v vs %+v",
				i, a.Bricks[i], b.Bricks[i])
		}
	}
}

func TestBuildLevelNoOverlap(t *testing.T) {
	s := config.Default()
	lvl := buildLevel(s, core.V(s.World.Width, s.World.Height))

	for i := 0; i < len(lvl.Bricks); i++ {
		for j := i + 1; j < len(lvl.Bricks); j++ {
			a, b := lvl.Bricks[i].Rect, lvl.Bricks[j].Rect
			// Shrink slightly so shared edges do not count
			a.Size = a.Size.Sub(core.V(0.01, 0.01))
			if a.Overlaps(b) {
				t.Fatalf("bricks %d and %d overlap", i, j)
			}
		}
	}
}

func TestBuildLevelMinimumBrickSize(t *testing.T) {
	s := config.Default()
	s.Bricks.Columns = config.ColumnsMax
	s.Bricks.Rows = config.RowsMax
	s.Bricks.PaddingX = config.PaddingMax
	s.Bricks.PaddingY = config.PaddingMax
	s = s.Clamped()

	lvl := buildLevel(s, core.V(s.World.Width, s.World.Height))
	if lvl.BrickSize.X() < brickMinWidth || lvl.BrickSize.Y() < brickMinHeight {
		t.Errorf("brick size %v below minimum %vx%v", lvl.BrickSize, brickMinWidth, brickMinHeight)
	}
}

func TestDamageTint(t *testing.T) {
	base := core.Color(140, 180, 230)

	hp2 := damageTint(base, 2)
	if hp2.R <= base.R || hp2.G >= base.G || hp2.B >= base.B {
		t.Errorf("hp2 tint not warmer/darker: %+v from %+v", hp2, base)
	}

	hp1 := damageTint(base, 1)
	if hp1.R < hp2.R || hp1.B > hp2.B {
		t.Errorf("hp1 tint not stronger than hp2: %+v vs %+v", hp1, hp2)
	}

	// Channel floors keep heavily damaged bricks visible
	dark := damageTint(core.Color(0, 0, 0), 1)
	if dark.G < 40 || dark.B < 20 {
		t.Errorf("tint floors violated: %+v", dark)
	}
}
