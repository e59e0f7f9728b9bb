package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func TestBindingsForDefaults(t *testing.T) {
	bindings, unknown := bindingsFor(config.DefaultBlockfallConfig().Controls)

	if len(unknown) != 1 || unknown[0] != "ctrl+c" {
		t.Errorf("unknown = %v, expected [ctrl+c]", unknown)
	}

	want := map[ebiten.Key]core.Action{
		ebiten.KeyArrowLeft: core.ActionLeft,
		ebiten.KeyA:         core.ActionLeft,
		ebiten.KeyArrowUp:   core.ActionRotate,
		ebiten.KeySpace:     core.ActionStart,
		ebiten.KeyEscape:    core.ActionPause,
		ebiten.KeyQ:         core.ActionQuit,
	}
	got := make(map[ebiten.Key]core.Action)
	for _, b := range bindings {
		got[b.key] = b.action
	}
	for k, a := range want {
		if got[k] != a {
			t.Errorf("key %v bound to %v, expected %v", k, got[k], a)
		}
	}
}

func TestBindingsKeepConfigOrder(t *testing.T) {
	bindings, _ := bindingsFor(config.ControlsConfig{
		Left:  []string{"j"},
		Right: []string{"l"},
		Quit:  []string{"f13"},
	})

	if len(bindings) != 2 {
		t.Fatalf("len(bindings) = %d, expected 2", len(bindings))
	}
	if bindings[0].key != ebiten.KeyJ || bindings[1].key != ebiten.KeyL {
		t.Errorf("bindings = %+v", bindings)
	}
}

func TestRGBAFallsBackToWhite(t *testing.T) {
	if rgba(1) != palette[core.ColorCyan] {
		t.Errorf("rgba(1) = %v, expected cyan", rgba(1))
	}
	if rgba(42) != white {
		t.Errorf("rgba(42) = %v, expected white", rgba(42))
	}
}
