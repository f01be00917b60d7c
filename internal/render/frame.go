// Package render computes what a frame shows independently of the backend
// that presents it and provides a software rasterizer for backends without
// a GPU surface.
package render

import "github.com/vovakirdan/sprite-demo/internal/core"

// Frame is one frame's draw list: clear the viewport, then copy Src from the
// texture into Dst.
type Frame struct {
	Clear   core.Color
	Src     core.Rect // Region of the texture
	Dst     core.Rect // Region of the viewport
	ViewW   int
	ViewH   int
	HasBlit bool
}

// ScreenPosition maps an entity position to viewport pixels. The viewport
// center is the origin of entity space.
func ScreenPosition(pos core.Point, viewW, viewH int) core.Point {
	return pos.Add(core.Pt(viewW/2, viewH/2))
}

// Compose builds the frame for a sprite at pos in a viewW×viewH viewport.
func Compose(counter uint8, pos core.Point, sprite core.Rect, viewW, viewH int) Frame {
	center := ScreenPosition(pos, viewW, viewH)
	return Frame{
		Clear:   core.Ramp(counter),
		Src:     sprite,
		Dst:     core.RectFromCenter(center, sprite.W, sprite.H),
		ViewW:   viewW,
		ViewH:   viewH,
		HasBlit: !sprite.Empty(),
	}
}

// Visible reports whether any part of the blit lands inside the viewport.
func (f Frame) Visible() bool {
	if !f.HasBlit {
		return false
	}
	return f.Dst.Intersects(core.NewRect(0, 0, f.ViewW, f.ViewH))
}
