// Package surface holds the image resources a fractal pass binds to: a
// byte-backed output pixmap, a float input texture and a sampler.
package surface

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Pixmap is the output surface of a pass: RGBA, 8 bits per channel, with
// normalized float colors at the API boundary.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Set writes one color at (x, y). Out-of-bounds writes are ignored; the
// dispatcher rejects mismatched extents before any kernel runs.
func (p *Pixmap) Set(x, y int, c mgl32.Vec4) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = channelByte(c[0])
	p.data[i+1] = channelByte(c[1])
	p.data[i+2] = channelByte(c[2])
	p.data[i+3] = channelByte(c[3])
}

// At returns the color at (x, y), or transparent black out of bounds.
func (p *Pixmap) At(x, y int) mgl32.Vec4 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return mgl32.Vec4{}
	}
	i := (y*p.width + x) * 4
	return mgl32.Vec4{
		float32(p.data[i+0]) / 255,
		float32(p.data[i+1]) / 255,
		float32(p.data[i+2]) / 255,
		float32(p.data[i+3]) / 255,
	}
}

// Image returns an NRGBA view sharing the pixmap's storage.
func (p *Pixmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   p.Bounds(),
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Texture is the input surface of a pass: float32 RGBA texels, read-only
// to kernels and safe for concurrent sampling.
type Texture struct {
	width  int
	height int
	data   []float32
}

// NewUniformTexture creates a texture holding a single color everywhere.
func NewUniformTexture(width, height int, c mgl32.Vec4) *Texture {
	t := &Texture{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
	for i := 0; i < len(t.data); i += 4 {
		t.data[i+0] = c[0]
		t.data[i+1] = c[1]
		t.data[i+2] = c[2]
		t.data[i+3] = c[3]
	}
	return t
}

// TextureFromImage copies img into a texture, normalizing channels to [0, 1].
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := &Texture{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		data:   make([]float32, bounds.Dx()*bounds.Dy()*4),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			t.data[i+0] = float32(c.R) / 255
			t.data[i+1] = float32(c.G) / 255
			t.data[i+2] = float32(c.B) / 255
			t.data[i+3] = float32(c.A) / 255
			i += 4
		}
	}
	return t
}

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.width, t.height)
}

// Texel returns the texel at (x, y), which must be in bounds. Addressing of
// out-of-range coordinates is the sampler's job.
func (t *Texture) Texel(x, y int) mgl32.Vec4 {
	i := (y*t.width + x) * 4
	return mgl32.Vec4{
		t.data[i+0],
		t.data[i+1],
		t.data[i+2],
		t.data[i+3],
	}
}
