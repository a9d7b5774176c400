package shader

import (
	"fmt"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Sources holds the text of the two shader stages, read fully into memory
// at startup.
type Sources struct {
	Vertex   string
	Fragment string
}

// Load reads both stage sources from disk. File errors are fatal to the
// caller; there is no fallback source.
func Load(vertexPath, fragmentPath string) (Sources, error) {
	vertex, err := os.ReadFile(vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fragment, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return Sources{Vertex: string(vertex), Fragment: string(fragment)}, nil
}

// NewProgram compiles both stages and links them into one program. The
// stage objects are deleted once linking succeeds; the caller owns the
// program handle.
func NewProgram(src Sources) (uint32, error) {
	vertexShader, err := Compile(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := Compile(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to link program: %v", logText)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// Compile builds one shader stage. A compile failure carries the GL info
// log in the returned error.
func Compile(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
