package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPixmapSetAt(t *testing.T) {
	p := NewPixmap(4, 3)

	want := mgl32.Vec4{51.0 / 255, 102.0 / 255, 153.0 / 255, 1}
	p.Set(2, 1, want)
	if got := p.At(2, 1); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}

	if got := p.At(0, 0); got != (mgl32.Vec4{}) {
		t.Errorf("unwritten pixel = %v, want zero", got)
	}
}

func TestPixmapClampsChannels(t *testing.T) {
	p := NewPixmap(1, 1)
	p.Set(0, 0, mgl32.Vec4{2, -1, 1, 1})
	if got := p.At(0, 0); got != (mgl32.Vec4{1, 0, 1, 1}) {
		t.Errorf("At(0, 0) = %v, want clamped (1, 0, 1, 1)", got)
	}
}

func TestPixmapIgnoresOutOfBounds(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(-1, 0, mgl32.Vec4{1, 1, 1, 1})
	p.Set(0, 2, mgl32.Vec4{1, 1, 1, 1})
	p.Set(5, 5, mgl32.Vec4{1, 1, 1, 1})

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := p.At(x, y); got != (mgl32.Vec4{}) {
				t.Errorf("pixel (%v, %v) = %v after out-of-bounds writes", x, y, got)
			}
		}
	}

	if got := p.At(-1, 0); got != (mgl32.Vec4{}) {
		t.Errorf("out-of-bounds At = %v, want zero", got)
	}
}

func TestPixmapImageSharesStorage(t *testing.T) {
	p := NewPixmap(3, 2)
	p.Set(1, 1, mgl32.Vec4{1, 0, 0, 1})

	img := p.Image()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBAAt(1, 1) = %v, want opaque red", got)
	}
}

func TestTextureFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	tex := TextureFromImage(src)
	if tex.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("texture bounds = %v", tex.Bounds())
	}
	if got := tex.Texel(0, 0); got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("Texel(0, 0) = %v, want red", got)
	}
	if got := tex.Texel(1, 0); got != (mgl32.Vec4{0, 0, 1, 1}) {
		t.Errorf("Texel(1, 0) = %v, want blue", got)
	}
}

func TestNewUniformTexture(t *testing.T) {
	c := mgl32.Vec4{0.25, 0.5, 0.75, 1}
	tex := NewUniformTexture(3, 3, c)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := tex.Texel(x, y); got != c {
				t.Errorf("Texel(%v, %v) = %v, want %v", x, y, got, c)
			}
		}
	}
}
