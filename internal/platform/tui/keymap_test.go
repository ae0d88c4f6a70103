package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "left" {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	if s == "right" {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"a", core.ActionMoveLeft},
		{"left", core.ActionMoveLeft},
		{"d", core.ActionMoveRight},
		{"right", core.ActionMoveRight},
		{"1", core.ActionSpeedDown},
		{"2", core.ActionSpeedReset},
		{"3", core.ActionSpeedUp},
		{"c", core.ActionPierce},
		{"n", core.ActionNukeRow},
		{"f", core.ActionBuyFreeze},
		{"e", core.ActionBuyLife},
		{"x", core.ActionBuyMagnet},
		{"t", core.ActionBuyMult},
		{"y", core.ActionBuyGod},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"z", core.ActionNone},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.want {
			t.Errorf("key %q -> %v, want %v", tt.key, action, tt.want)
		}
		if quit {
			t.Errorf("key %q reported as quit", tt.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	action, quit := km.MapKey(keyMsg("q"))
	if !quit || action != core.ActionQuit {
		t.Errorf("q -> (%v, %v), want quit", action, quit)
	}
	action, quit = km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit || action != core.ActionQuit {
		t.Errorf("ctrl+c -> (%v, %v), want quit", action, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("a"), &frame) {
		t.Fatal("movement key reported as quit")
	}
	if !frame.Has(core.ActionMoveLeft) {
		t.Error("frame missing MoveLeft after mapping")
	}

	// Unmapped keys leave the frame untouched
	km.MapKeyToFrame(keyMsg("z"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone recorded in frame")
	}
}
