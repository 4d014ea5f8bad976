// Package display implements the emulator's monochrome display device.
// It renders the 64x32 framebuffer as a single greyscale texture on a
// fullscreen quad; scaling to the window size is left to the sampler.
package display

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/c8vm/chip8/chip8"
	"github.com/c8vm/chip8/devices"
)

// Display dimensions in pixels.
const (
	Width  = chip8.DisplayWidth
	Height = chip8.DisplayHeight
)

// Device defines all internal doodads for the display.
type Device struct {
	shader      uint32
	vao         uint32
	vbo         uint32
	tex         uint32
	initialized bool
}

var _ devices.Device = &Device{}

// New creates a new device.
func New() *Device {
	return &Device{}
}

// Name returns the device name.
func (d *Device) Name() string {
	return "display"
}

// Startup initializes device resources. It requires a current OpenGL
// context on the calling thread.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	gl.Uniform1i(gl.GetUniformLocation(d.shader, glStr("display")), 0)
	gl.Uniform4f(gl.GetUniformLocation(d.shader, glStr("offColor")), 0, 0, 0, 1)
	gl.Uniform4f(gl.GetUniformLocation(d.shader, glStr("onColor")), 0.9, 0.9, 0.9, 1)

	d.tex = makeTexture()
	d.initialized = true
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	if !d.initialized {
		return nil
	}
	d.initialized = false

	gl.DeleteTextures(1, &d.tex)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Update uploads a new framebuffer snapshot. Cells hold 0 or 1, one
// byte per pixel, in row-major order.
func (d *Device) Update(fb []byte) {
	if !d.initialized {
		return
	}
	uploadTexture(d.tex, gl.RED, Width, Height, gl.RED, gl.UNSIGNED_BYTE, fb)
}

// Draw renders the display contents.
func (d *Device) Draw() {
	if !d.initialized {
		return
	}

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
