package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Rows reserved at the top of the screen for the HUD.
const hudRows = 2

// Fixed element colors; bricks, bonuses and particles carry their own.
var (
	ballColor   = core.Color(220, 70, 170)
	pierceColor = core.Color(255, 120, 120)
	frozenColor = core.Color(180, 220, 255)
	paddleColor = core.Color(200, 200, 200)
	magnetColor = core.Color(160, 255, 200)
	trailColor  = core.Color(120, 60, 110)
	hudColor    = core.Color(200, 200, 200)
	msgColor    = core.Color(255, 220, 120)
)

// DrawFrame rasterizes one frame of world-space draw data into the
// screen buffer. The world is scaled to the area below the HUD rows;
// aspect ratio is sacrificed for full use of the terminal.
func DrawFrame(s *core.Screen, d *core.DrawData) {
	s.Clear()

	fieldH := s.Height() - hudRows
	if fieldH < 1 || s.Width() < 1 {
		return
	}
	sx := float64(s.Width()) / d.World.X()
	sy := float64(fieldH) / d.World.Y()

	toCell := func(p core.Vec) (int, int) {
		return int(p.X() * sx), hudRows + int(p.Y()*sy)
	}

	drawBricks(s, d, sx, sy)
	drawParticles(s, d, toCell)
	drawBonuses(s, d, sx, sy)
	drawPaddle(s, d, sx, sy)
	drawBall(s, d, toCell)
	drawHUD(s, d)

	if d.State.Paused {
		s.DrawTextCentered(s.Height()/2, "PAUSED")
	}
	switch d.State.Phase {
	case core.PhaseWin:
		s.DrawTextCentered(s.Height()/2-1, "YOU WIN!")
		s.DrawTextCentered(s.Height()/2+1, "Press R to restart, Q to quit")
	case core.PhaseLose:
		s.DrawTextCentered(s.Height()/2-1, "GAME OVER")
		s.DrawTextCentered(s.Height()/2+1, "Press R to restart, Q to quit")
	}
}

func drawBricks(s *core.Screen, d *core.DrawData, sx, sy float64) {
	for _, b := range d.Bricks {
		x0 := int(b.Rect.Left() * sx)
		x1 := int(b.Rect.Right() * sx)
		y0 := hudRows + int(b.Rect.Top()*sy)
		y1 := hudRows + int(b.Rect.Bottom()*sy)
		r := '█'
		if b.HP > 1 {
			r = '▓'
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetColored(x, y, r, b.Color)
			}
		}
	}
}

func drawParticles(s *core.Screen, d *core.DrawData, toCell func(core.Vec) (int, int)) {
	for _, p := range d.Particles {
		if p.Alpha < 0.15 {
			continue
		}
		x, y := toCell(p.Pos)
		r := '·'
		if p.Size >= 2.5 {
			r = '•'
		}
		s.SetColored(x, y, r, p.Color)
	}
}

func drawBonuses(s *core.Screen, d *core.DrawData, sx, sy float64) {
	for _, b := range d.Bonuses {
		c := b.Rect.Center()
		x := int(c.X() * sx)
		y := hudRows + int(c.Y()*sy)
		s.SetColored(x, y, b.Label, b.Color)
		// Glow brackets pulse on and off
		if b.Glow < 3.14 {
			s.SetColored(x-1, y, '[', b.Color)
			s.SetColored(x+1, y, ']', b.Color)
		}
	}
}

func drawPaddle(s *core.Screen, d *core.DrawData, sx, sy float64) {
	x0 := int(d.Paddle.Left() * sx)
	x1 := int(d.Paddle.Right() * sx)
	y := hudRows + int(d.Paddle.Top()*sy)
	for x := x0; x <= x1; x++ {
		s.SetColored(x, y, '▀', paddleColor)
	}
	if d.Magnet {
		s.SetColored(x0-1, y, '(', magnetColor)
		s.SetColored(x1+1, y, ')', magnetColor)
	}
}

func drawBall(s *core.Screen, d *core.DrawData, toCell func(core.Vec) (int, int)) {
	for _, p := range d.Ball.Trail {
		x, y := toCell(p)
		s.SetColored(x, y, '·', trailColor)
	}

	c := ballColor
	switch {
	case d.Ball.Pierce:
		c = pierceColor
	case d.Ball.Frozen:
		c = frozenColor
	}
	x, y := toCell(d.Ball.Pos)
	s.SetColored(x, y, '●', c)
}

func drawHUD(s *core.Screen, d *core.DrawData) {
	h := d.HUD
	line := fmt.Sprintf("Score: %d  Lives: %d  Combo: x%d  $%d (total $%d)  Speed: %.0f/%.0f",
		h.Score, h.Lives, h.ComboMult, h.Balance, h.TotalEarned, h.SpeedCur, h.SpeedTarget)
	s.DrawTextColored(1, 0, line, hudColor)

	if len(h.Effects) > 0 {
		s.DrawTextColored(1, 1, "["+strings.Join(h.Effects, "] [")+"]", hudColor)
	} else {
		s.DrawTextColored(1, 1, "No active powerups", core.Color(120, 120, 120))
	}

	if h.Message != "" {
		s.DrawTextColored(s.Width()-len(h.Message)-1, 1, h.Message, msgColor)
	}
}

// RenderScreen converts a screen buffer to a styled string. Runs of
// adjacent cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.IsZero() {
				sb.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.ANSI256()))
				sb.WriteString(style.Render(run.String()))
			}
		}
	}
	return sb.String()
}
