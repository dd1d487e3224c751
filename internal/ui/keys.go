package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
)

// Ebiten keys name physical positions on a US layout, so WASD also covers
// ZQSD on an AZERTY keyboard.
var keyDirections = map[ebiten.Key]game.Direction{
	ebiten.KeyArrowUp:    game.Up,
	ebiten.KeyW:          game.Up,
	ebiten.KeyArrowDown:  game.Down,
	ebiten.KeyS:          game.Down,
	ebiten.KeyArrowLeft:  game.Left,
	ebiten.KeyA:          game.Left,
	ebiten.KeyArrowRight: game.Right,
	ebiten.KeyD:          game.Right,
}

func isRestartKey(k ebiten.Key) bool {
	return k == ebiten.KeySpace || k == ebiten.KeyEnter
}
