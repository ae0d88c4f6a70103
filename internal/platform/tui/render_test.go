package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func testDrawData() *core.DrawData {
	return &core.DrawData{
		World: core.V(800, 600),
		Ball: core.BallView{
			Pos:    core.V(400, 300),
			Radius: 10,
		},
		Paddle: core.NewRect(350, 560, 100, 18),
		Bricks: []core.BrickView{
			{Rect: core.NewRect(20, 40, 60, 35), Color: core.Color(140, 180, 230), HP: 1},
		},
		HUD: core.HUDView{
			Score: 120,
			Lives: 3,
		},
	}
}

func TestDrawFramePlacesEntities(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawFrame(s, testDrawData())

	text := s.String()
	if !strings.Contains(text, "●") {
		t.Error("ball not drawn")
	}
	if !strings.Contains(text, "▀") {
		t.Error("paddle not drawn")
	}
	if !strings.Contains(text, "█") {
		t.Error("brick not drawn")
	}
	if !strings.Contains(s.Row(0), "Score: 120") {
		t.Errorf("HUD missing score: %q", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Lives: 3") {
		t.Errorf("HUD missing lives: %q", s.Row(0))
	}
}

func TestDrawFrameBallPosition(t *testing.T) {
	s := core.NewScreen(80, 24)
	d := testDrawData()
	DrawFrame(s, d)

	// World center maps to the middle of the playfield below the HUD
	x := int(400.0 * 80 / 800)
	y := hudRows + int(300.0*22/600)
	if got := s.Get(x, y).Rune; got != '●' {
		t.Errorf("cell (%d,%d) = %q, want ball", x, y, got)
	}
}

func TestDrawFrameTerminalOverlays(t *testing.T) {
	s := core.NewScreen(80, 24)
	d := testDrawData()

	d.State.Phase = core.PhaseWin
	DrawFrame(s, d)
	if !strings.Contains(s.String(), "YOU WIN!") {
		t.Error("win overlay missing")
	}

	d.State.Phase = core.PhaseLose
	DrawFrame(s, d)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("lose overlay missing")
	}

	d.State.Phase = core.PhasePlaying
	d.State.Paused = true
	DrawFrame(s, d)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestDrawFrameShopMessage(t *testing.T) {
	s := core.NewScreen(80, 24)
	d := testDrawData()
	d.HUD.Message = "Purchased for $10!"
	DrawFrame(s, d)

	if !strings.Contains(s.Row(1), "Purchased for $10!") {
		t.Errorf("message row = %q", s.Row(1))
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	out := RenderScreen(s)
	if out != "abcd\nefgh" {
		t.Errorf("rendered = %q", out)
	}
}

func TestRenderScreenStylesColoredRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColored(0, 0, "ab", core.Color(255, 0, 0))
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost content: %q", out)
	}
}

func TestDrawFrameTinyScreen(t *testing.T) {
	// Degenerate sizes must not panic
	s := core.NewScreen(1, 1)
	DrawFrame(s, testDrawData())
	s = core.NewScreen(0, 0)
	DrawFrame(s, testDrawData())
}
