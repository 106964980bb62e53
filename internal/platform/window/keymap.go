package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// keyBindings lists the keys that hold each action down.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// heldActions returns every action with at least one bound key down.
func heldActions(isDown func(ebiten.Key) bool) []core.Action {
	var held []core.Action
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if isDown(k) {
				held = append(held, b.action)
				break
			}
		}
	}
	return held
}
