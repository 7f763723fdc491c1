package input

import "github.com/go-gl/mathgl/mgl32"

// MouseState is a snapshot of the mouse at a single moment.
type MouseState struct {
	buttons [ButtonCount]bool

	// Position is the cursor position in window coordinates.
	Position mgl32.Vec2
	// Scroll is the wheel movement accumulated since the last update.
	Scroll mgl32.Vec2
}

// Down reports whether button is down in this snapshot.
func (s MouseState) Down(button Button) bool {
	return button.Valid() && s.buttons[button]
}

// Set marks button as down or up. Codes outside the table are ignored.
func (s *MouseState) Set(button Button, down bool) {
	if button.Valid() {
		s.buttons[button] = down
	}
}

// Reset marks every button as up and zeroes position and scroll.
func (s *MouseState) Reset() {
	*s = MouseState{}
}

// Mouse answers edge-detection queries for mouse buttons and exposes the
// cursor and wheel movement between frames.
type Mouse struct {
	current  MouseState
	previous MouseState
}

func (m *Mouse) Current() MouseState  { return m.current }
func (m *Mouse) Previous() MouseState { return m.previous }

func (m *Mouse) Up(button Button) bool {
	if button == ButtonAny {
		return m.any(m.Up)
	}
	return !m.current.Down(button)
}

func (m *Mouse) Down(button Button) bool {
	if button == ButtonAny {
		return m.any(m.Down)
	}
	return m.current.Down(button)
}

func (m *Mouse) Pressed(button Button) bool {
	if button == ButtonAny {
		return m.any(m.Pressed)
	}
	return m.current.Down(button) && !m.previous.Down(button)
}

func (m *Mouse) Released(button Button) bool {
	if button == ButtonAny {
		return m.any(m.Released)
	}
	return !m.current.Down(button) && m.previous.Down(button)
}

func (m *Mouse) Held(button Button) bool {
	if button == ButtonAny {
		return m.any(m.Held)
	}
	return m.current.Down(button) && m.previous.Down(button)
}

// Position returns the cursor position for this frame.
func (m *Mouse) Position() mgl32.Vec2 {
	return m.current.Position
}

// PositionDelta returns how far the cursor moved since the previous frame.
func (m *Mouse) PositionDelta() mgl32.Vec2 {
	return m.current.Position.Sub(m.previous.Position)
}

// ScrollDelta returns the wheel movement received during the last poll.
func (m *Mouse) ScrollDelta() mgl32.Vec2 {
	return m.current.Scroll
}

// Update rotates the current snapshot into previous and installs state as current.
func (m *Mouse) Update(state MouseState) {
	m.previous = m.current
	m.current = state
}

// Reset clears both snapshots.
func (m *Mouse) Reset() {
	m.current.Reset()
	m.previous.Reset()
}

func (m *Mouse) any(query func(Button) bool) bool {
	for b := Button(0); b < ButtonCount; b++ {
		if query(b) {
			return true
		}
	}
	return false
}
