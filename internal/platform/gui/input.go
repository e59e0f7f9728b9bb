package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// namedKeys maps the key names used in config files to ebiten keys.
// Modifier combinations like "ctrl+c" have no single ebiten key and are
// skipped; closing the window quits instead.
var namedKeys = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"enter": ebiten.KeyEnter,
	" ":     ebiten.KeySpace,
	"space": ebiten.KeySpace,
	"esc":   ebiten.KeyEscape,
	"tab":   ebiten.KeyTab,
	"a":     ebiten.KeyA,
	"b":     ebiten.KeyB,
	"c":     ebiten.KeyC,
	"d":     ebiten.KeyD,
	"e":     ebiten.KeyE,
	"f":     ebiten.KeyF,
	"g":     ebiten.KeyG,
	"h":     ebiten.KeyH,
	"i":     ebiten.KeyI,
	"j":     ebiten.KeyJ,
	"k":     ebiten.KeyK,
	"l":     ebiten.KeyL,
	"m":     ebiten.KeyM,
	"n":     ebiten.KeyN,
	"o":     ebiten.KeyO,
	"p":     ebiten.KeyP,
	"q":     ebiten.KeyQ,
	"r":     ebiten.KeyR,
	"s":     ebiten.KeyS,
	"t":     ebiten.KeyT,
	"u":     ebiten.KeyU,
	"v":     ebiten.KeyV,
	"w":     ebiten.KeyW,
	"x":     ebiten.KeyX,
	"y":     ebiten.KeyY,
	"z":     ebiten.KeyZ,
}

// binding pairs an ebiten key with the action it triggers.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindingsFor converts configured controls to ebiten key bindings, in a
// stable order. Unknown key names are returned separately so the caller can
// log them.
func bindingsFor(c config.ControlsConfig) (bindings []binding, unknown []string) {
	groups := []struct {
		action core.Action
		keys   []string
	}{
		{core.ActionLeft, c.Left},
		{core.ActionRight, c.Right},
		{core.ActionDown, c.Down},
		{core.ActionRotate, c.Rotate},
		{core.ActionStart, c.Start},
		{core.ActionPause, c.Pause},
		{core.ActionQuit, c.Quit},
	}

	for _, g := range groups {
		for _, name := range g.keys {
			k, ok := namedKeys[name]
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			bindings = append(bindings, binding{key: k, action: g.action})
		}
	}
	return bindings, unknown
}
