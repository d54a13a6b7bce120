package surface

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

type Address int

const (
	AddressClamp Address = iota
	AddressRepeat
)

// Sampler reads a texture at normalized coordinates, level 0 only. The
// zero value is a linear filter with clamp addressing.
type Sampler struct {
	Filter  Filter
	Address Address
}

// Sample reads t at uv, where (0, 0) is the top-left corner and (1, 1)
// the bottom-right. Out-of-range coordinates are resolved by the
// addressing mode. A nil or empty texture samples as transparent black.
func (s Sampler) Sample(t *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	if t == nil || t.width == 0 || t.height == 0 {
		return mgl32.Vec4{}
	}

	if s.Filter == FilterNearest {
		x := s.resolve(int(floor(uv[0]*float32(t.width))), t.width)
		y := s.resolve(int(floor(uv[1]*float32(t.height))), t.height)
		return t.Texel(x, y)
	}

	// Texel centers sit at (i + 0.5) / width.
	tx := uv[0]*float32(t.width) - 0.5
	ty := uv[1]*float32(t.height) - 0.5
	fx := floor(tx)
	fy := floor(ty)
	dx := tx - fx
	dy := ty - fy

	x0 := s.resolve(int(fx), t.width)
	x1 := s.resolve(int(fx)+1, t.width)
	y0 := s.resolve(int(fy), t.height)
	y1 := s.resolve(int(fy)+1, t.height)

	c := t.Texel(x0, y0).Mul((1 - dx) * (1 - dy))
	c = c.Add(t.Texel(x1, y0).Mul(dx * (1 - dy)))
	c = c.Add(t.Texel(x0, y1).Mul((1 - dx) * dy))
	c = c.Add(t.Texel(x1, y1).Mul(dx * dy))
	return c
}

func (s Sampler) resolve(i, n int) int {
	if s.Address == AddressRepeat {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
