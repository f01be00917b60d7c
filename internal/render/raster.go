package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rasterize renders f into a w×h image. The frame's viewport is scaled to
// fit the output with nearest-neighbor sampling, and sprite pixels are drawn
// over the clear color. A nil texture draws the sprite as a white rectangle.
func Rasterize(f Frame, tex image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || f.ViewW <= 0 || f.ViewH <= 0 {
		return out
	}

	bg := color.RGBA{R: f.Clear.R, G: f.Clear.G, B: f.Clear.B, A: 0xff}
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if !f.HasBlit || f.Src.Empty() || f.Dst.Empty() {
		return out
	}

	var src image.Image = image.NewUniform(color.White)
	var origin image.Point
	if tex != nil {
		src = tex
		origin = tex.Bounds().Min
	}
	sr := image.Rect(f.Src.X, f.Src.Y, f.Src.Right(), f.Src.Bottom()).Add(origin)

	// Texture pixels map to the viewport rect Dst, then the viewport scales
	// to the output.
	ox, oy := float64(w)/float64(f.ViewW), float64(h)/float64(f.ViewH)
	kx, ky := float64(f.Dst.W)/float64(f.Src.W), float64(f.Dst.H)/float64(f.Src.H)
	m := f64.Aff3{
		kx * ox, 0, (float64(f.Dst.X) - float64(sr.Min.X)*kx) * ox,
		0, ky * oy, (float64(f.Dst.Y) - float64(sr.Min.Y)*ky) * oy,
	}
	draw.NearestNeighbor.Transform(out, m, src, sr, draw.Over, nil)
	return out
}
