//go:build !android

package client

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tiltsnake/internal/scene"
)

// MaxSprites bounds a single draw call; the floor of a 64x64 board plus its
// wall ring is the largest batch.
const MaxSprites = 8192

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteProgram is one linked shader over the shared sprite VAO plus its
// camera uniforms.
type spriteProgram struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newSpriteProgram(fragSrc string) (spriteProgram, error) {
	id, err := linkProgram(spriteVertSrc, fragSrc)
	if err != nil {
		return spriteProgram{}, err
	}
	return spriteProgram{
		id:          id,
		uCamera:     gl.GetUniformLocation(id, gl.Str("uCamera\x00")),
		uZoom:       gl.GetUniformLocation(id, gl.Str("uZoom\x00")),
		uResolution: gl.GetUniformLocation(id, gl.Str("uResolution\x00")),
	}, nil
}

type Renderer struct {
	flat spriteProgram
	box  spriteProgram
	glow spriteProgram

	vao uint32
	vbo uint32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.flat, err = newSpriteProgram(flatFragSrc); err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	if r.box, err = newSpriteProgram(boxFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("box program: %w", err)
	}
	if r.glow, err = newSpriteProgram(glowFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("glow program: %w", err)
	}

	// Streaming buffer, 8 floats per sprite (x, y, size, r, g, b, a, rotation).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(scene.SpriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for _, p := range []spriteProgram{r.flat, r.box, r.glow} {
		if p.id != 0 {
			gl.DeleteProgram(p.id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	bg := scene.Palette.Backdrop
	red, green, blue := bg.Floats()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(red, green, blue, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawFrame draws a built scene: floor, shadows, halos, then boxes.
func (r *Renderer) DrawFrame(f *scene.Frame, cam scene.Camera, fbW, fbH int) {
	r.draw(r.flat, f.Floor, cam, fbW, fbH, false)
	r.draw(r.flat, f.Shadow, cam, fbW, fbH, false)
	r.draw(r.glow, f.Glow, cam, fbW, fbH, true)
	r.draw(r.box, f.Boxes, cam, fbW, fbH, false)
	gl.BindVertexArray(0)
}

func (r *Renderer) draw(p spriteProgram, buf []float32, cam scene.Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / scene.SpriteStride
	if count > MaxSprites {
		count = MaxSprites
	}

	gl.UseProgram(p.id)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*scene.SpriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
