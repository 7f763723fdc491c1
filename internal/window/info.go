package window

import (
	"fmt"
	"image"
	"strings"
)

// Flags controls how a window is presented.
type Flags uint32

const (
	Decorated Flags = 1 << iota
	Fullscreen
	Resizable
	Visible

	DefaultFlags = Decorated | Visible | Resizable
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	var names []string
	for _, n := range []struct {
		flag Flags
		name string
	}{
		{Decorated, "Decorated"},
		{Fullscreen, "Fullscreen"},
		{Resizable, "Resizable"},
		{Visible, "Visible"},
	} {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// GLFlags controls the OpenGL context created alongside a window.
type GLFlags uint32

const (
	DoubleBuffer GLFlags = 1 << iota
	VSync

	DefaultGLFlags = DoubleBuffer | VSync
)

func (f GLFlags) Has(flag GLFlags) bool {
	return f&flag == flag
}

// GLVersion is an OpenGL context version.
type GLVersion struct {
	Major, Minor int
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// GLInfo describes the OpenGL context of a window.
type GLInfo struct {
	Flags       GLFlags
	Version     GLVersion
	DepthBits   int
	StencilBits int
}

func DefaultGLInfo() GLInfo {
	return GLInfo{
		Flags:       DefaultGLFlags,
		Version:     GLVersion{Major: 4, Minor: 5},
		DepthBits:   24,
		StencilBits: 8,
	}
}

// CursorMode selects how the cursor behaves over a window.
type CursorMode int

const (
	CursorVisible CursorMode = iota
	CursorHidden
	// CursorDisabled hides the cursor and locks it to the window.
	CursorDisabled
)

func (m CursorMode) String() string {
	switch m {
	case CursorVisible:
		return "visible"
	case CursorHidden:
		return "hidden"
	case CursorDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("CursorMode(%d)", int(m))
	}
}

// ParseCursorMode accepts the names produced by CursorMode.String.
func ParseCursorMode(s string) (CursorMode, error) {
	switch strings.ToLower(s) {
	case "visible", "":
		return CursorVisible, nil
	case "hidden":
		return CursorHidden, nil
	case "disabled":
		return CursorDisabled, nil
	}
	return CursorVisible, fmt.Errorf("unknown cursor mode %q", s)
}

// Info describes a window to create.
type Info struct {
	Flags      Flags
	Name       string
	Position   image.Point
	Extent     image.Point
	CursorMode CursorMode

	// GL requests an OpenGL context. A nil GL creates a window without one.
	GL *GLInfo
}

func DefaultInfo() Info {
	gl := DefaultGLInfo()
	return Info{
		Flags:      DefaultFlags,
		Name:       "Dynamic_Static",
		Position:   image.Pt(320, 180),
		Extent:     image.Pt(1280, 720),
		CursorMode: CursorVisible,
		GL:         &gl,
	}
}

// Action is the transition reported with a key or mouse button event.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)
