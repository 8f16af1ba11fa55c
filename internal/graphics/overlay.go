package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const overlayPadding = 4

var overlayVertexShader = `#version 330 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
out vec2 UV;
void main() {
	UV = aUV;
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

var overlayFragmentShader = `#version 330 core
in vec2 UV;
uniform sampler2D tex;
out vec4 FragColor;
void main() {
	FragColor = texture(tex, UV);
}
`

// Overlay draws debug text lines in the top-left corner. Text is rasterized
// with the fixed 7x13 bitmap face into an RGBA image and uploaded as a
// texture; no font assets are needed.
type Overlay struct {
	shader  *Shader
	vao     uint32
	vbo     uint32
	texture uint32

	screenW, screenH int
	img              *image.RGBA
	lines            []string
	dirty            bool
}

func NewOverlay(screenW, screenH int) (*Overlay, error) {
	shader, err := NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}

	o := &Overlay{
		shader:  shader,
		screenW: screenW,
		screenH: screenH,
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	return o, nil
}

// SetLines replaces the overlay text. The texture is re-rasterized lazily on
// the next Render.
func (o *Overlay) SetLines(lines []string) {
	o.lines = append(o.lines[:0], lines...)
	o.dirty = true
}

func (o *Overlay) rasterize() {
	face := basicfont.Face7x13
	lineHeight := face.Height + 2

	width := 0
	for _, line := range o.lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	width += 2 * overlayPadding
	height := lineHeight*len(o.lines) + 2*overlayPadding

	if o.img == nil || o.img.Bounds().Dx() != width || o.img.Bounds().Dy() != height {
		o.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	for i := range o.img.Pix {
		o.img.Pix[i] = 0
	}

	drawer := &font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
	}
	for i, line := range o.lines {
		drawer.Dot = fixed.P(overlayPadding, overlayPadding+face.Ascent+i*lineHeight)
		drawer.DrawString(line)
	}

	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(o.img.Pix))
	o.dirty = false
}

// Render draws the overlay. Call with depth testing already configured for
// the 3D pass; blending and depth state are restored before returning.
func (o *Overlay) Render() {
	if len(o.lines) == 0 {
		return
	}
	if o.dirty {
		o.rasterize()
	}

	// Top-left quad in clip space, sized to the rasterized image.
	w := 2 * float32(o.img.Bounds().Dx()) / float32(o.screenW)
	h := 2 * float32(o.img.Bounds().Dy()) / float32(o.screenH)
	x0, y0 := float32(-1), float32(1)
	quad := []float32{
		x0, y0, 0, 0,
		x0, y0 - h, 0, 1,
		x0 + w, y0 - h, 1, 1,
		x0, y0, 0, 0,
		x0 + w, y0 - h, 1, 1,
		x0 + w, y0, 1, 0,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetInt("tex", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
