package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/geri1245/fractalpass/programs"
	"github.com/geri1245/fractalpass/surface"
)

type SaveOptions struct {
	Name          string
	Width, Height int
	// Antialias supersamples the render by this factor per axis before
	// downscaling. Values below 2 disable antialiasing.
	Antialias int
	Uniforms  programs.Uniforms
}

// Save renders prog at the requested size and encodes it as a PNG at
// opts.Name. A partially written file is removed on failure. progress may
// be nil; when given it should cover the supersampled bounds, see
// SaveBounds.
func Save(
	ctx context.Context,
	opts SaveOptions,
	prog programs.Program,
	in *surface.Texture,
	smp surface.Sampler,
	progress *Progress,
) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("save: invalid size %vx%v", opts.Width, opts.Height)
	}

	file, err := os.Create(opts.Name)
	if err != nil {
		return err
	}

	err = renderTo(ctx, file, opts, prog, in, smp, progress)
	if err != nil {
		file.Close()
		os.Remove(file.Name())
		return err
	}

	err = file.Close()
	if err != nil {
		os.Remove(file.Name())
		return err
	}

	logger().Info("saved image", "name", opts.Name, "width", opts.Width, "height", opts.Height)
	return nil
}

// SaveBounds is the dispatch extent Save uses for opts, for sizing a
// Progress.
func SaveBounds(opts SaveOptions) image.Rectangle {
	scale := opts.Antialias
	if scale < 2 {
		scale = 1
	}
	return image.Rect(0, 0, opts.Width*scale, opts.Height*scale)
}

func renderTo(
	ctx context.Context,
	file *os.File,
	opts SaveOptions,
	prog programs.Program,
	in *surface.Texture,
	smp surface.Sampler,
	progress *Progress,
) error {
	bounds := SaveBounds(opts)
	out := surface.NewPixmap(bounds.Dx(), bounds.Dy())

	pass := &Pass{
		Program:  prog,
		Uniforms: opts.Uniforms,
		Output:   out,
		Input:    in,
		Sampler:  smp,
		Progress: progress,
	}
	if err := pass.Dispatch(ctx, bounds); err != nil {
		return err
	}

	var img image.Image = out.Image()
	if bounds.Dx() != opts.Width || bounds.Dy() != opts.Height {
		img = Downscale(img, opts.Width, opts.Height)
	}

	return png.Encode(file, img)
}
