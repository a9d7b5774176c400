package graphics

// Context defines the interface for a window with a current OpenGL context
// and a pollable input queue.
type Context interface {
	MakeCurrent() error
	// Drain returns every input event pending at the time of the call,
	// translated to Events. It never blocks.
	Drain() []Event
	// EndFrame presents the back buffer.
	EndFrame()
	// DrawableSize returns the window's drawable area in pixels.
	DrawableSize() (int, int)
	Shutdown()
}
