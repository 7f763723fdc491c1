// Package windowtest provides an in-memory window.Backend for tests.
package windowtest

import "github.com/dynamic-static/dstsys/internal/window"

// Native records what was done to one fake window.
type Native struct {
	Title      string
	Text       string
	CursorMode window.CursorMode
	Share      window.Native
	Width      int
	Height     int
	Focused    bool
	Current    bool
	Swaps      int
	Destroyed  int

	// Events delivers callbacks to the window.Window that owns this handle.
	Events window.Events
}

func (n *Native) SetTitle(title string)                { n.Title = title }
func (n *Native) Clipboard() string                    { return n.Text }
func (n *Native) SetClipboard(text string)             { n.Text = text }
func (n *Native) SetCursorMode(mode window.CursorMode) { n.CursorMode = mode }
func (n *Native) Focus()                               { n.Focused = true }
func (n *Native) MakeContextCurrent()                  { n.Current = true }
func (n *Native) SwapBuffers()                         { n.Swaps++ }
func (n *Native) FramebufferSize() (int, int)          { return n.Width, n.Height }
func (n *Native) Destroy()                             { n.Destroyed++ }

// Backend creates Natives and replays queued callbacks on PollEvents.
type Backend struct {
	Natives    []*Native
	Polls      int
	Terminated bool
	// Fail makes CreateWindow return this error.
	Fail error

	queued []func()
}

var _ window.Backend = (*Backend)(nil)

func (b *Backend) CreateWindow(info window.Info, share window.Native, events window.Events) (window.Native, error) {
	if b.Fail != nil {
		return nil, b.Fail
	}
	n := &Native{
		Title:  info.Name,
		Share:  share,
		Width:  info.Extent.X,
		Height: info.Extent.Y,
		Events: events,
	}
	b.Natives = append(b.Natives, n)
	return n, nil
}

// Queue schedules fn to run during the next PollEvents.
func (b *Backend) Queue(fn func()) {
	b.queued = append(b.queued, fn)
}

func (b *Backend) PollEvents() {
	b.Polls++
	queued := b.queued
	b.queued = nil
	for _, fn := range queued {
		fn()
	}
}

func (b *Backend) Terminate() { b.Terminated = true }
