package ui

import (
	"unicode"

	"github.com/golangdaddy/roaddodge/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyRunes maps the physical keys the game listens to onto their lowercase characters
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyW: 'w',
	ebiten.KeyA: 'a',
	ebiten.KeyS: 's',
	ebiten.KeyD: 'd',
	ebiten.KeyR: 'r',
}

// KeyPoller turns Ebitengine key edges into game key events
type KeyPoller struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// Poll forwards this tick's presses and releases to the state.
// Shift produces the upper case character, like a typed key would.
func (kp *KeyPoller) Poll(state *game.State) {
	kp.released = inpututil.AppendJustReleasedKeys(kp.released[:0])
	for _, k := range kp.released {
		r, ok := keyRunes[k]
		if !ok {
			continue
		}
		// Release both cases: shift may have changed since the press
		state.SetKey(game.Key(r), false)
		state.SetKey(game.Key(unicode.ToUpper(r)), false)
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	kp.pressed = inpututil.AppendJustPressedKeys(kp.pressed[:0])
	for _, k := range kp.pressed {
		r, ok := keyRunes[k]
		if !ok {
			continue
		}
		if shift {
			r = unicode.ToUpper(r)
		}
		state.SetKey(game.Key(r), true)
	}
}
