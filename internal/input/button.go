package input

import "fmt"

// Button represents a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonX1 // often "back"
	ButtonX2 // often "forward"
	ButtonUnknown
	// ButtonCount is the number of slots in a MouseState.
	ButtonCount
	// ButtonAny matches any button in a Mouse query.
	ButtonAny
)

// Valid reports whether b indexes a MouseState slot.
func (b Button) Valid() bool {
	return b >= 0 && b < ButtonCount
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonX1:
		return "X1"
	case ButtonX2:
		return "X2"
	case ButtonUnknown:
		return "Unknown"
	case ButtonCount:
		return "Count"
	case ButtonAny:
		return "Any"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}
