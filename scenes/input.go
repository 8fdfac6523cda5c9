package scenes

import (
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one action to keys and standard gamepad buttons.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings is the default control scheme.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionDuck: {
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionFire: {
		Keys:    []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyZ},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
}

// analogDeadzone is how far the left stick must move to count as a press.
const analogDeadzone = 0.4

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ReadInput polls the keyboard and gamepads into one frame of core input.
func ReadInput() systems.Input {
	var in systems.Input
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					in[action] = true
				}
			}
		}
	}

	// Merge the left stick into the directions
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -analogDeadzone {
			in[cfg.ActionMoveLeft] = true
		}
		if h > analogDeadzone {
			in[cfg.ActionMoveRight] = true
		}
		if v > analogDeadzone {
			in[cfg.ActionDuck] = true
		}
	}
	return in
}

// FrameRatio is the core frame ratio of one ebiten tick.
func FrameRatio() float64 {
	return 1000 / float64(ebiten.TPS()) / cfg.Screen.FrameMS
}
