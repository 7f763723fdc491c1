// Package input tracks keyboard and mouse state per frame.
//
// Native events are folded into a pending snapshot as they arrive. Once per
// polling cycle Update hands the pending snapshot to each device, which keeps
// the prior frame around for edge detection. A key pressed and released
// between two updates is therefore never observed as pressed.
package input

import "github.com/go-gl/mathgl/mgl32"

// Input aggregates one Keyboard and one Mouse.
type Input struct {
	Keyboard Keyboard
	Mouse    Mouse

	keys  KeyboardState
	mouse MouseState
}

// sided modifiers and the generic key they roll up into.
var modifiers = [...]struct{ generic, left, right Key }{
	{KeyShift, KeyLeftShift, KeyRightShift},
	{KeyCtrl, KeyLeftControl, KeyRightControl},
	{KeyAlt, KeyLeftMenu, KeyRightMenu},
}

// SetKey records a key transition for the next Update.
func (in *Input) SetKey(key Key, down bool) {
	in.keys.Set(key, down)
	for _, m := range modifiers {
		if key == m.left || key == m.right {
			in.keys.Set(m.generic, in.keys.Down(m.left) || in.keys.Down(m.right))
		}
	}
}

// SetButton records a mouse button transition for the next Update.
func (in *Input) SetButton(button Button, down bool) {
	in.mouse.Set(button, down)
}

// SetCursor records the latest cursor position.
func (in *Input) SetCursor(x, y float32) {
	in.mouse.Position = mgl32.Vec2{x, y}
}

// AddScroll accumulates wheel movement until the next Update.
func (in *Input) AddScroll(dx, dy float32) {
	in.mouse.Scroll = in.mouse.Scroll.Add(mgl32.Vec2{dx, dy})
}

// Update publishes everything recorded since the last call to the devices.
func (in *Input) Update() {
	in.Keyboard.Update(in.keys)
	in.Mouse.Update(in.mouse)
	in.mouse.Scroll = mgl32.Vec2{}
}

// Reset clears every snapshot, including events not yet published. The
// cursor position is kept so that the next delta is not a jump from the origin.
func (in *Input) Reset() {
	pos := in.mouse.Position
	in.keys.Reset()
	in.mouse.Reset()
	in.mouse.Position = pos
	in.Keyboard.Reset()
	in.Mouse.Reset()
	in.Mouse.current.Position = pos
	in.Mouse.previous.Position = pos
}
