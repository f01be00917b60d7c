package core

import "fmt"

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color so a Color can be handed to image and ebiten APIs directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Ramp returns the clear color for frame counter i.
// Red follows the counter, blue follows its complement, green stays at 64.
func Ramp(i uint8) Color {
	return Color{R: i, G: 64, B: 255 - i}
}
