// Package render runs fractal programs on the host, one kernel invocation
// per pixel, and encodes the result.
package render

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/geri1245/fractalpass/programs"
	"github.com/geri1245/fractalpass/surface"
)

// Columns rendered per worker goroutine.
const chunkSize = 50

// A Pass executes one program over one output surface.
type Pass struct {
	Program  programs.Program
	Uniforms programs.Uniforms
	Output   *surface.Pixmap
	Input    *surface.Texture
	Sampler  surface.Sampler
	Progress *Progress
}

// Dispatch invokes the kernel once per coordinate in bounds. It validates
// the dispatch preconditions before any invocation runs: bounds must equal
// the output surface's bounds, the iteration budget must be positive, and
// composite mode needs a non-empty input texture.
//
// Invocations are independent and each writes only its own pixel, so the
// grid is split into column chunks rendered concurrently. Cancelling ctx
// stops workers between columns and Dispatch returns the context's error;
// the output surface is then only partially written.
func (p *Pass) Dispatch(ctx context.Context, bounds image.Rectangle) error {
	if p.Program.Invoke == nil {
		return programs.ErrNoCPUImplementation
	}
	if p.Output == nil || p.Output.Bounds().Empty() {
		return fmt.Errorf("dispatch: output surface is empty")
	}
	if bounds != p.Output.Bounds() {
		return fmt.Errorf("dispatch: bounds %v do not match output surface %v", bounds, p.Output.Bounds())
	}
	if p.Uniforms.Iterations == 0 {
		return fmt.Errorf("dispatch: iteration budget must be positive")
	}
	if p.Uniforms.Mode == programs.WriteComposite {
		if p.Input == nil || p.Input.Bounds().Empty() {
			return fmt.Errorf("dispatch: composite mode needs an input texture")
		}
	}

	logger().Debug("dispatching kernel",
		"program", p.Program.Name,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"iterations", p.Uniforms.Iterations,
		"mode", p.Uniforms.Mode,
	)

	var wg sync.WaitGroup
	for chunkMin := bounds.Min.X; chunkMin < bounds.Max.X; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > bounds.Max.X {
			chunkMax = bounds.Max.X
		}

		wg.Add(1)
		go func(chunkMin, chunkMax int) {
			defer wg.Done()
			for x := chunkMin; x < chunkMax; x++ {
				if ctx.Err() != nil {
					return
				}

				for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
					p.Program.Invoke(p.Uniforms, image.Point{X: x, Y: y}, p.Output, p.Input, p.Sampler)
				}
				p.Progress.add(bounds.Dy())
			}
		}(chunkMin, chunkMax)
	}

	wg.Wait()

	return ctx.Err()
}
