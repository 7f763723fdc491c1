package window

import (
	"fmt"

	"github.com/dynamic-static/dstsys/internal/logger"
)

// Platform owns a Backend and every window created through it.
//
// All methods except those of Registry must be called from the thread that
// initialised the backend.
type Platform struct {
	backend  Backend
	registry *Registry
	closed   bool

	// Natives closed while the backend is dispatching callbacks. GLFW does
	// not allow a window to be destroyed from its own callbacks.
	polling   bool
	destroyed []Native
}

func NewPlatform(backend Backend) *Platform {
	return &Platform{
		backend:  backend,
		registry: NewRegistry(),
	}
}

// NewWindow creates a top level window.
func (p *Platform) NewWindow(info Info) (*Window, error) {
	return p.create(info, nil)
}

func (p *Platform) create(info Info, parent *Window) (*Window, error) {
	if p.closed {
		return nil, fmt.Errorf("create window %q: %w", info.Name, ErrClosed)
	}

	w := &Window{platform: p, info: info, parent: parent}
	w.input.Reset()

	var share Native
	if parent != nil {
		share = parent.native
	}
	native, err := p.backend.CreateWindow(info, share, nativeEvents{w: w})
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", info.Name, err)
	}
	w.native = native
	p.registry.Add(w)

	logger.Debug("created window",
		"name", info.Name,
		"extent", info.Extent,
		"flags", info.Flags,
	)
	return w, nil
}

// PollEvents clears every text stream, dispatches pending native events and
// then publishes the resulting input state of every window.
func (p *Platform) PollEvents() {
	windows := p.registry.Windows()
	for _, w := range windows {
		w.text.Reset()
	}
	p.polling = true
	p.backend.PollEvents()
	p.polling = false
	for _, n := range p.destroyed {
		n.Destroy()
	}
	p.destroyed = nil

	for _, w := range p.registry.Windows() {
		w.input.Update()
	}
}

func (p *Platform) destroy(n Native) {
	if p.polling {
		p.destroyed = append(p.destroyed, n)
		return
	}
	n.Destroy()
}

// Windows returns the live windows in creation order.
func (p *Platform) Windows() []*Window {
	return p.registry.Windows()
}

// Registry exposes the set of live windows.
func (p *Platform) Registry() *Registry {
	return p.registry
}

// Close closes every window and terminates the backend.
func (p *Platform) Close() {
	if p.closed {
		return
	}
	for _, w := range p.registry.Windows() {
		w.Close()
	}
	p.backend.Terminate()
	p.closed = true
}
