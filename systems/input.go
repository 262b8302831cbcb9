package systems

import (
	"image"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad and touch IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
	lastCursor image.Point
)

// UpdateInput polls raw input and updates the InputComponent and the pointer
// cell. Must run BEFORE every system that reads actions or the pointer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if method, ok := pollPointer(ecs); ok {
		input.LastInputMethod = method
	} else if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollPointer feeds the pointer cell from touch, mouse or the left stick, in
// that order of precedence. Positions over the control bar are ignored.
func pollPointer(ecs *ecs.ECS) (components.InputMethod, bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		_, y := ebiten.TouchPosition(id)
		if float64(y) <= cfg.Table.Height {
			SetPointerY(ecs, float64(y))
			return components.InputTouch, true
		}
	}

	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	if cursor != lastCursor {
		lastCursor = cursor
		if float64(y) <= cfg.Table.Height {
			SetPointerY(ecs, float64(y))
			return components.InputMouse, true
		}
	}

	if dy := analogStickVertical(gamepadIDs); dy != 0 {
		SetPointerY(ecs, clampPointer(PointerY(ecs)+dy*cfg.Input.StickSpeed))
		return components.InputGamepad, true
	}
	return 0, false
}

// analogStickVertical returns the left stick's vertical deflection of the
// first gamepad outside the deadzone, or 0.
func analogStickVertical(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone || vertical > deadzone {
			return vertical
		}
	}
	return 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
