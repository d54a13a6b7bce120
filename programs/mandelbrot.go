package programs

import (
	_ "embed"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/geri1245/fractalpass/surface"
)

//go:embed shaders/mandelbrot.wgsl
var mandelbrotCompute string

func init() {
	NewProgram(Program{
		Name:          "mandelbrot",
		ComputeShader: mandelbrotCompute,
		Invoke:        mandelbrotKernel,
	})
}

// PlanePoint maps a pixel position onto the complex plane, spanning
// [-2.25, 0.75] on the real axis and [-1.5, 1.5] on the imaginary axis.
// No aspect correction; a non-square surface stretches the fractal.
func PlanePoint(x, y, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x)/float32(width)*3.0 - 2.25,
		float32(y)/float32(height)*3.0 - 1.5,
	}
}

// SampleCoord normalizes a pixel position to [0, 1] for sampling the
// input texture. Distinct from PlanePoint.
func SampleCoord(x, y, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x) / float32(width),
		float32(y) / float32(height),
	}
}

// EscapeIterations iterates z = z*z + c starting from z = c and returns the
// index of the first iterate with |z| > 4, or max if no iterate within the
// budget escapes. The test uses the updated z, so an immediately diverging
// point still reports index 0.
func EscapeIterations(c mgl32.Vec2, max uint32) uint32 {
	z := c
	for i := uint32(0); i < max; i++ {
		z = mgl32.Vec2{
			z[0]*z[0] - z[1]*z[1] + c[0],
			2*z[0]*z[1] + c[1],
		}
		if z.Len() > 4.0 {
			return i
		}
	}
	return max
}

func mandelbrotKernel(uniforms Uniforms, pos image.Point, out *surface.Pixmap, in *surface.Texture, smp surface.Sampler) {
	size := out.Bounds().Max
	c := PlanePoint(pos.X, pos.Y, size.X, size.Y)

	iterations := EscapeIterations(c, uniforms.Iterations)
	value := float32(iterations) / float32(uniforms.Iterations)

	if uniforms.Mode == WriteVisualize {
		out.Set(pos.X, pos.Y, mgl32.Vec4{value, value, value, 1})
		return
	}

	uv := SampleCoord(pos.X, pos.Y, size.X, size.Y)
	out.Set(pos.X, pos.Y, smp.Sample(in, uv))
}
