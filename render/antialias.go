package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Downscale resizes img to width×height with a bilinear filter. Used to
// collapse a supersampled render into the requested output size.
func Downscale(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
