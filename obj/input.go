package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the input snapshot for one tick. The game loop polls it once
// per Update and every consumer reads the same values, so there is no
// ordering hazard between input events and game logic.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float32
	// FirePressed is true on the frame the fire key is pressed.
	FirePressed bool
	// FireHeld is true while the fire key is held down.
	FireHeld bool
	// PausePressed is true on the frame the pause key is pressed.
	PausePressed bool
	// StartPressed confirms menus (start game, restart after game over).
	StartPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and first gamepad into the snapshot.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX float32
	// Keyboard A/D or arrows
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	// Gamepad: left stick X plus the primary button for fire
	ids := ebiten.GamepadIDs()
	var gpFireJustPressed, gpFireHeld, gpPauseJustPressed bool
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}

		gpFireJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpFireHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpPauseJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.MoveX = moveX
	i.FirePressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpFireJustPressed
	i.FireHeld = ebiten.IsKeyPressed(ebiten.KeySpace) || gpFireHeld
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) || gpPauseJustPressed
	i.StartPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpFireJustPressed
}
