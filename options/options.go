package options

// Options carries the run configuration. The defaults reproduce the stock
// run: one 800×500 window, the bundled triangle shaders, dark-gray clear.
type Options struct {
	Width        int
	Height       int
	Title        string
	VertexPath   string
	FragmentPath string
	Backend      string // windowing backend: "sdl" or "glfw"
	ClearColor   [4]float32
}

func Default() Options {
	return Options{
		Width:        800,
		Height:       500,
		Title:        "SDL2+OpenGL Triangle",
		VertexPath:   "shaders/vertex.glsl",
		FragmentPath: "shaders/fragment.glsl",
		Backend:      "sdl",
		ClearColor:   [4]float32{0.1, 0.1, 0.1, 1.0},
	}
}
