package sdlcontext

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	graphics "github.com/skels/gltriangle/graphics"
)

// Context is the SDL2 windowing backend. It owns the window, the GL context
// bound to it, and access to the SDL event queue.
type Context struct {
	window *sdl.Window
	glctx  sdl.GLContext
}

// New initializes SDL video, creates a window with an OpenGL 3.3 core
// profile context, makes the context current and loads the GL entry points
// through SDL's proc-address resolver. Must be called from the main thread.
func New(width, height int, title string) (*Context, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	glctx, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create GL context: %w", err)
	}

	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		sdl.GLDeleteContext(glctx)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to load GL entry points: %w", err)
	}

	log.Printf("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Context{window: window, glctx: glctx}, nil
}

// MakeCurrent binds the GL context to the calling thread.
func (c *Context) MakeCurrent() error {
	return c.window.GLMakeCurrent(c.glctx)
}

// Drain empties the SDL event queue for this tick.
func (c *Context) Drain() []graphics.Event {
	var events []graphics.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		events = append(events, translate(ev))
	}
	return events
}

func translate(ev sdl.Event) graphics.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return graphics.Event{Kind: graphics.EventQuit, Timestamp: e.Timestamp}
	default:
		return graphics.Event{Kind: graphics.EventOther, Timestamp: ev.GetTimestamp()}
	}
}

// EndFrame swaps the window's back buffer to the front.
func (c *Context) EndFrame() {
	c.window.GLSwap()
}

func (c *Context) DrawableSize() (int, int) {
	w, h := c.window.GLGetDrawableSize()
	return int(w), int(h)
}

// Shutdown releases the GL context and the window, then shuts SDL down.
func (c *Context) Shutdown() {
	sdl.GLDeleteContext(c.glctx)
	c.window.Destroy()
	sdl.Quit()
}
