package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const vertexShaderSource = `#version 330 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in float aMass;
out float mass;

void main() {
    mass = aMass;
    gl_PointSize = aMass * 10.0;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSource = `#version 330 core
in float mass;
out vec4 FragColor;

void main() {
    float r = length(gl_PointCoord - vec2(0.5));
    if (r > 0.5) discard;

    vec3 base = vec3(0.1, 0.6, 1.0);
    vec3 heavy = vec3(1.0, 0.9, 0.2);
    vec3 color = mix(base, heavy, clamp(mass / 2.0, 0.0, 1.0));
    float alpha = 1.0 - smoothstep(0.45, 0.5, r);
    FragColor = vec4(color, alpha);
}
` + "\x00"

// PointSpritePipeline owns the GL program and the dynamic vertex
// buffer for point-sprite particle rendering. The buffer holds exactly
// n interleaved (x, y, mass) vertices and is rewritten every frame.
type PointSpritePipeline struct {
	program uint32
	vao     uint32
	vbo     uint32
	count   int32
}

// NewPointSpritePipeline compiles the sprite shaders and allocates the
// GPU-resident vertex buffer for n particles. It requires a current GL
// context (the raylib window provides one).
func NewPointSpritePipeline(n int) (*PointSpritePipeline, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: init opengl: %w", err)
	}

	program, err := createSpriteProgram()
	if err != nil {
		return nil, err
	}

	p := &PointSpritePipeline{program: program, count: int32(n)}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, BufferBytes(n), nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, VertexStride*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, VertexStride*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return p, nil
}

// Upload replaces the buffer contents with the packed frame data.
func (p *PointSpritePipeline) Upload(data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
}

// Draw renders every particle as a shaded circular sprite.
func (p *PointSpritePipeline) Draw() {
	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.POINTS, 0, p.count)
	gl.BindVertexArray(0)
}

func (p *PointSpritePipeline) Close() {
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

func createSpriteProgram() (uint32, error) {
	vShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("render: vertex shader: %w", err)
	}
	fShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vShader)
		return 0, fmt.Errorf("render: fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vShader)
	gl.DeleteShader(fShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("render: link sprite program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}

	return shader, nil
}
