package glfwcontext

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	graphics "github.com/skels/gltriangle/graphics"
)

// Context is the GLFW windowing backend. GLFW delivers input through
// callbacks rather than a queue, so the callbacks append to a pending
// slice that Drain hands out once per tick.
type Context struct {
	window  *glfw.Window
	pending []graphics.Event
}

// New creates a GLFW window with an OpenGL 3.3 core profile context, makes
// it current and loads the GL entry points. Must be called from the main
// thread.
func New(width, height int, title string) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c := &Context{window: window}
	window.SetCloseCallback(func(w *glfw.Window) {
		c.push(graphics.EventQuit)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			c.push(graphics.EventQuit)
			return
		}
		c.push(graphics.EventOther)
	})

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to load GL entry points: %w", err)
	}

	return c, nil
}

func (c *Context) push(kind graphics.EventKind) {
	c.pending = append(c.pending, graphics.Event{
		Kind:      kind,
		Timestamp: uint32(glfw.GetTime() * 1000),
	})
}

// MakeCurrent binds the GL context to the calling thread.
func (c *Context) MakeCurrent() error {
	c.window.MakeContextCurrent()
	return nil
}

// Drain pumps GLFW's callbacks and returns whatever they produced.
func (c *Context) Drain() []graphics.Event {
	c.pending = nil
	glfw.PollEvents()
	events := c.pending
	c.pending = nil
	return events
}

// EndFrame swaps the window's back buffer to the front.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) DrawableSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window and terminates GLFW.
func (c *Context) Shutdown() {
	c.window.Destroy()
	glfw.Terminate()
}
