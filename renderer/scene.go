package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	mgl32 "github.com/go-gl/mathgl/mgl32"

	shader "github.com/skels/gltriangle/shader"
)

// Scene is anything the loop can draw once per tick.
type Scene interface {
	Draw()
	Destroy()
}

// triangleVertices is the one mesh: an upward-pointing triangle in
// normalized device coordinates.
var triangleVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// TriangleScene owns the linked program and the uploaded geometry. Program
// and vertex array are bound once here and stay bound for the process
// lifetime; nothing rebinds or mutates them after construction.
type TriangleScene struct {
	program uint32
	vao     uint32
	vbo     uint32
}

// NewTriangleScene compiles and links the shader program, uploads the
// triangle into a static buffer, configures attribute slot 0 as tightly
// packed 3-float tuples, and sets the fixed viewport and clear color.
// Requires a current GL context.
func NewTriangleScene(src shader.Sources, width, height int, clear [4]float32) (*TriangleScene, error) {
	program, err := shader.NewProgram(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	gl.UseProgram(program)

	s := &TriangleScene{program: program}
	vertices := flatten(triangleVertices)
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])

	return s, nil
}

// Draw issues the one clear and the one draw call of a frame.
func (s *TriangleScene) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// Destroy releases the GL objects in reverse creation order.
func (s *TriangleScene) Destroy() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

func flatten(vertices []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}
