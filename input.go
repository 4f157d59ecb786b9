package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the pointer and key state for one frame.
type Input struct {
	// PointerX/Y are the cursor position in world coordinates.
	PointerX float64
	PointerY float64
	// PointerPressed is true on the frame the left button goes down.
	PointerPressed bool
	// PointerReleased is true on the frame the left button goes up.
	PointerReleased bool

	PausePressed bool
	ResetPressed bool
	NextPressed  bool
	CopyPressed  bool
	DebugPressed bool
	// GravityPressed toggles gravity.
	GravityPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the mouse and keyboard.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.PointerX = float64(mx)
	i.PointerY = float64(my)

	i.PointerPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PointerReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.NextPressed = inpututil.IsKeyJustPressed(ebiten.KeyN)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.GravityPressed = inpututil.IsKeyJustPressed(ebiten.KeyG)
}
